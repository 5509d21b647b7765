package cmd

import (
	"fmt"

	"droscher.com/BeerBase/pkg/version"
)

type VersionCmd struct{}

func (v *VersionCmd) Run(_ *Context) error {
	fmt.Println(version.Get()) //nolint:forbidigo // CLI output

	return nil
}
