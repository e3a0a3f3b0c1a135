/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/sullis/cfnbuild/cmd"

func main() {
	cmd.Execute()
}
