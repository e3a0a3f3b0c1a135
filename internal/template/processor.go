/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package template

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Processor defines the interface for preprocessing template bodies before
// they are submitted to CloudFormation
type Processor interface {
	Process(body string, variables map[string]interface{}) (string, error)
}

// SprigProcessor implements Processor using Go's text/template with Sprig functions
type SprigProcessor struct{}

// NewSprigProcessor creates a new template processor
func NewSprigProcessor() *SprigProcessor {
	return &SprigProcessor{}
}

// Process renders a template body with the provided variables
func (p *SprigProcessor) Process(body string, variables map[string]interface{}) (string, error) {
	tmpl, err := template.New("cloudformation").
		Funcs(sprig.TxtFuncMap()).
		Parse(body)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
