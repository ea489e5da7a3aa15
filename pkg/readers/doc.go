// Package readers defines the Reader capability and the process-wide
// factory of file-format readers. Concrete formats live in subpackages
// (json, xml, yaml, toml), each registering itself at import time, so a
// binary enables formats by blank-importing the subpackages it wants.
package readers
