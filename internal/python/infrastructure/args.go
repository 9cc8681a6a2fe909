package infrastructure

// buildVenvArgs constructs interpreter arguments for venv creation.
//
//	python -m venv <dir>
func buildVenvArgs(venvDir string) []string {
	return []string{"-m", "venv", venvDir}
}

// buildEditableArgs constructs interpreter arguments for an editable
// install.
//
//	python -m pip install -e <dir> [--upgrade] [extra pip args...]
//
// pip is always run as a module of the venv interpreter, so the install
// lands in the venv regardless of what `pip` resolves to on PATH.
func buildEditableArgs(pkgDir string, upgrade bool, pipArgs []string) []string {
	args := []string{"-m", "pip", "install", "-e", pkgDir}
	if upgrade {
		args = append(args, "--upgrade")
	}
	return append(args, pipArgs...)
}

// buildTestArgs constructs interpreter arguments for a test run.
//
//	python -m <runner> [default args...] [extra args...]
func buildTestArgs(runner string, defaults, extra []string) []string {
	args := []string{"-m", runner}
	args = append(args, defaults...)
	return append(args, extra...)
}
