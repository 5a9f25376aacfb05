package utils

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/meysamhadeli/snapgrid/constants/lipgloss"
)

// InputPrompt prompts the user for one line of input and returns it trimmed.
func InputPrompt(reader *bufio.Reader) (string, error) {

	fmt.Print(lipgloss.BlueSky.Render("> "))

	// Read user input
	userInput, err := reader.ReadString('\n')
	if userInput == "" {
		return "", nil
	}

	if err != nil {
		if err == io.EOF {
			return "", nil
		}
		return "", fmt.Errorf(lipgloss.Red.Render("🚫 Error reading input: "))
	}

	return strings.TrimSpace(userInput), nil
}

// InputPromptWithContext prompts the user with context cancellation support
func InputPromptWithContext(ctx context.Context, reader *bufio.Reader) (string, error) {
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		fmt.Print(lipgloss.BlueSky.Render("> "))

		userInput, err := reader.ReadString('\n')

		if err != nil {
			if err == io.EOF {
				errChan <- nil
			} else {
				errChan <- fmt.Errorf(lipgloss.Red.Render("🚫 Error reading input: "))
			}
			return
		}

		inputChan <- strings.TrimSpace(userInput)
	}()

	// Wait for either input or context cancellation
	select {
	case <-ctx.Done():
		fmt.Println() // Print newline for clean exit
		return "", ctx.Err()
	case err := <-errChan:
		return "", err
	case input := <-inputChan:
		return input, nil
	}
}

// ConfirmPrompt asks a yes/no question about subject and returns true only
// for an explicit 'y' or 'Y' answer.
func ConfirmPrompt(subject string, reader *bufio.Reader) (bool, error) {
	fmt.Print(lipgloss.BlueSky.Render(fmt.Sprintf("%s [y/N]: ", subject)))

	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}
