// Package shader loads GLSL shader source pairs from disk, stamping the
// GLSL version the host compiles against into the source text. Shader
// compilation itself is the host's business.
package shader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// versionPlaceholder is substituted once per source file.
const versionPlaceholder = "GLSL_VERSION"

// Load reads "<name>_vertex.glsl" and "<name>_fragment.glsl" from dir and
// replaces the first version placeholder of each with glslVersion.
func Load(dir, name string, glslVersion int) (vertex, fragment string, err error) {
	vertex, err = loadOne(filepath.Join(dir, name+"_vertex.glsl"), glslVersion)
	if err != nil {
		return "", "", err
	}
	fragment, err = loadOne(filepath.Join(dir, name+"_fragment.glsl"), glslVersion)
	if err != nil {
		return "", "", err
	}
	return vertex, fragment, nil
}

func loadOne(path string, glslVersion int) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("shader: %w", err)
	}
	return strings.Replace(string(src), versionPlaceholder, strconv.Itoa(glslVersion), 1), nil
}
