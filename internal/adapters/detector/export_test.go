package detector

// DetectExported exposes detect for testing.
func DetectExported(isTTY bool, ci string) OutputMode {
	return detect(isTTY, ci)
}
