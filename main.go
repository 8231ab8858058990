// Caesar - encode, decode and analyse text with a shift substitution cipher.
package main

import (
	"context"
	"fmt"
	"os"

	"caesar/cmd"
	cerrors "caesar/internal/errors"
)

func main() {
	if err := cmd.Execute(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "caesar: %v\n", err)
		os.Exit(cerrors.ExitCode(err))
	}
}
