package cli

import (
	"fmt"
	"io"
	"os"
)

// openOutput returns a writer for the result. When outPath is
// empty it returns stdout. The returned closer must be called
// to finalize the file (nil for stdout). If executable is true
// the file is created with mode 0777 instead of 0666.
func openOutput(
	stdout io.Writer,
	outPath string,
	executable bool,
) (io.Writer, func() error, error) {
	const errCtx = "opening output"

	if outPath == "" {
		return stdout, nil, nil
	}

	var perm os.FileMode = 0o666
	if executable {
		perm = 0o777
	}

	fi, err := os.OpenFile( //nolint:gosec // path from CLI flag
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		perm,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	// O_CREATE does not change the mode of an existing file.
	if executable {
		if err := fi.Chmod(perm); err != nil {
			_ = fi.Close() //nolint:errcheck // already failing

			return nil, nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return fi, fi.Close, nil
}
