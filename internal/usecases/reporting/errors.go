package reporting

// UpstreamFetchError indica falha ao buscar dados na API do GoAffPro.
type UpstreamFetchError struct {
	Err error
}

func (e *UpstreamFetchError) Error() string { return e.Err.Error() }
func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// SheetReadError indica falha ao ler a aba de destino.
type SheetReadError struct {
	Err error
}

func (e *SheetReadError) Error() string { return e.Err.Error() }
func (e *SheetReadError) Unwrap() error { return e.Err }

// SheetWriteError indica falha ao escrever na aba de destino.
type SheetWriteError struct {
	Err error
}

func (e *SheetWriteError) Error() string { return e.Err.Error() }
func (e *SheetWriteError) Unwrap() error { return e.Err }
