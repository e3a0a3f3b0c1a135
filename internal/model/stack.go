/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package model

// Stack represents a fully resolved stack ready for a lifecycle operation
type Stack struct {
	Name         string
	Environment  string // "" for the base scope
	Region       string
	TemplateBody string
	Parameters   map[string]string
	Capabilities []string
}
