// Package environment detects the execution environment (Kaggle, Colab, or
// local) and resolves the base directories for input data and output
// artifacts accordingly.
package environment

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment names reported by Detect.
const (
	Kaggle = "kaggle"
	Colab  = "colab"
	Local  = "local"
)

// Base directories per environment.
const (
	kaggleDataDir   = "/kaggle/input"
	kaggleOutputDir = "/kaggle/working"
	colabDataDir    = "/content/drive/MyDrive/data"
	colabOutputDir  = "/content"
	localDataDir    = "data"
	localOutputDir  = "output"
)

// IsKaggle detects if running in a Kaggle kernel.
func IsKaggle() bool {
	_, ok := os.LookupEnv("KAGGLE_KERNEL_RUN_TYPE")
	return ok
}

// IsColab detects if running in Google Colab.
func IsColab() bool {
	_, ok := os.LookupEnv("COLAB_GPU")
	return ok
}

// Detect returns the current execution environment name: kaggle, colab, or
// local.
func Detect() string {
	if IsKaggle() {
		return Kaggle
	}
	if IsColab() {
		return Colab
	}
	return Local
}

// DataPath returns the path to the input data directory, or to a file within
// it when filename is non-empty.
func DataPath(filename string) string {
	var base string
	switch Detect() {
	case Kaggle:
		base = kaggleDataDir
	case Colab:
		base = colabDataDir
	default:
		base = localDataDir
	}
	if filename == "" {
		return base
	}
	return filepath.Join(base, filename)
}

// OutputPath returns the path to the output directory, or to a file within it
// when filename is non-empty. The local output directory is created on demand;
// hosted environments provide theirs.
func OutputPath(filename string) (string, error) {
	var base string
	switch Detect() {
	case Kaggle:
		base = kaggleOutputDir
	case Colab:
		base = colabOutputDir
	default:
		base = localOutputDir
		if err := os.MkdirAll(base, 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory %s: %v", base, err)
		}
	}
	if filename == "" {
		return base, nil
	}
	return filepath.Join(base, filename), nil
}
