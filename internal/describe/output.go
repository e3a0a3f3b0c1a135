/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package describe

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/sullis/cfnbuild/internal/aws"
)

var (
	completeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	failedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	subtleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// FormatStackDescription formats full stack information for display
func FormatStackDescription(stack *aws.Stack) string {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Stack: %s\n", stack.Name))
	output.WriteString(fmt.Sprintf("Status: %s\n", renderStatus(stack.Status)))
	if stack.StatusReason != "" {
		output.WriteString(fmt.Sprintf("Status Reason: %s\n", stack.StatusReason))
	}

	if stack.CreatedTime != nil {
		output.WriteString(fmt.Sprintf("Created: %s\n", formatTime(*stack.CreatedTime)))
	}
	if stack.UpdatedTime != nil {
		output.WriteString(fmt.Sprintf("Updated: %s\n", formatTime(*stack.UpdatedTime)))
	}

	if stack.ID != "" && stack.ID != stack.Name {
		output.WriteString(fmt.Sprintf("Stack ID: %s\n", subtleStyle.Render(stack.ID)))
	}

	if stack.Description != "" {
		output.WriteString(fmt.Sprintf("Description: %s\n", stack.Description))
	}

	if len(stack.Parameters) > 0 {
		output.WriteString("\nParameters:\n")
		writeKeyValueMap(&output, stack.Parameters)
	}

	if len(stack.Outputs) > 0 {
		output.WriteString("\nOutputs:\n")
		writeKeyValueMap(&output, stack.Outputs)
	}

	if len(stack.Tags) > 0 {
		output.WriteString("\nTags:\n")
		writeKeyValueMap(&output, stack.Tags)
	}

	return output.String()
}

// FormatStackStatus formats the one-line status view of a stack
func FormatStackStatus(stack *aws.Stack) string {
	line := fmt.Sprintf("%s: %s", stack.Name, renderStatus(stack.Status))
	if stack.StatusReason != "" {
		line += fmt.Sprintf(" (%s)", stack.StatusReason)
	}
	return line + "\n"
}

// renderStatus colours a stack status by outcome
func renderStatus(status aws.StackStatus) string {
	s := string(status)
	switch {
	case strings.HasSuffix(s, "_FAILED"), strings.Contains(s, "ROLLBACK"):
		return failedStyle.Render(s)
	case strings.HasSuffix(s, "_COMPLETE"):
		return completeStyle.Render(s)
	case strings.HasSuffix(s, "_IN_PROGRESS"):
		return inProgressStyle.Render(s)
	default:
		return s
	}
}

// formatTime formats time in a human-readable format
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05 MST")
}

// writeKeyValueMap writes a sorted map as key-value pairs with indentation
func writeKeyValueMap(output *strings.Builder, m map[string]string) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(output, "  %s: %s\n", key, m[key])
	}
}
