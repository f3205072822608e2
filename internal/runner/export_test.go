package runner

import "path/filepath"

var filepathEval = filepath.EvalSymlinks
