package usecase

// Sweep drops idle widget transcripts. The HTTP server calls it on a ticker.
func (uc *implUseCase) Sweep() int {
	return uc.widget.sweep()
}
