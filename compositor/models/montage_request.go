package models

// MontageRequest describes one grid composition: the chronologically ordered
// input files, the grid shape, and where the result goes. Built once,
// consumed once.
type MontageRequest struct {
	Files       []string
	TileColumns int
	CellWidth   int
	CellHeight  int
	Background  string
	OutputPath  string
}
