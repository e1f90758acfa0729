package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewRunID gera um identificador curto para execuções de sincronização.
func NewRunID() (string, error) {
	return gonanoid.Generate(characters, 8)
}
