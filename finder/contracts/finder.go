package contracts

import "github.com/meysamhadeli/snapgrid/finder/models"

type IImageFinder interface {
	Search(criteria models.SearchCriteria) (*models.ScanReport, error)
}
