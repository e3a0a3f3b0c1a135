/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter defines the interface for user prompting
type Prompter interface {
	ConfirmDeletion(stackName string) (bool, error)
}

// StdinPrompter implements Prompter using standard input
type StdinPrompter struct {
	input io.Reader
}

// NewStdinPrompter creates a new prompter that reads from stdin
func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{input: os.Stdin}
}

// ConfirmDeletion prompts the user via stdin to confirm a stack deletion
func (p *StdinPrompter) ConfirmDeletion(stackName string) (bool, error) {
	fmt.Printf("\nDelete stack %s? This cannot be undone. [y/N]: ", stackName)

	scanner := bufio.NewScanner(p.input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}
		// EOF or empty input - treat as "no"
		return false, nil
	}

	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return response == "y" || response == "yes", nil
}

// defaultPrompter is the package-level default prompter
var defaultPrompter Prompter = NewStdinPrompter()

// SetPrompter allows injection of a custom prompter (for testing)
func SetPrompter(p Prompter) {
	defaultPrompter = p
}

// ConfirmDeletion prompts the user to confirm a stack deletion using the
// default prompter. Returns true if the user confirms (y/yes).
func ConfirmDeletion(stackName string) (bool, error) {
	return defaultPrompter.ConfirmDeletion(stackName)
}
