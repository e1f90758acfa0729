package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro do pipeline de agregação
const (
	// Erros de integração externa (EXT)
	ErrUpstreamFetch = "EXT_001" // Falha ao buscar dados na API do GoAffPro

	// Erros da planilha (SHT)
	ErrSheetRead  = "SHT_001" // Falha ao ler a aba de destino
	ErrSheetWrite = "SHT_002" // Falha ao escrever na aba de destino

	// Erros de agregação (AGG)
	ErrComputation = "AGG_001" // Falha na montagem do relatório

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes

	// Erros do servidor (SRV)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP. Falhas do pipeline mantêm
// 500; o código no corpo distingue a categoria.
var httpStatusMap = map[string]int{
	ErrUpstreamFetch:       http.StatusInternalServerError,
	ErrSheetRead:           http.StatusInternalServerError,
	ErrSheetWrite:          http.StatusInternalServerError,
	ErrComputation:         http.StatusInternalServerError,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError é o corpo de erro padronizado. O campo Message sai como "error"
// para manter o formato {"error": "<mensagem>"} consumido pelos clientes.
type APIError struct {
	Message string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Message: message,
		Code:    code,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
