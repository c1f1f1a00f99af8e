/*
Copyright © 2025 GovTech Singapore
SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/GovTechSG/chkr/pkg/cli"
)

func main() {
	cli.Execute()
}
