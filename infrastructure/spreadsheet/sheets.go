package spreadsheet

import (
	"context"
	"fmt"

	"github.com/vfg2006/affiliate-insights-api/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Store abstrai a planilha de destino. Nenhuma garantia de transação ou
// bloqueio: invocações concorrentes podem intercalar escritas.
type Store interface {
	// ReadRows retorna as linhas existentes da aba, ou vazio se a aba não
	// tiver conteúdo.
	ReadRows(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error)

	// ReplaceAll sobrescreve todo o conteúdo da aba com o cabeçalho seguido
	// das linhas.
	ReplaceAll(ctx context.Context, spreadsheetID, sheetName string, header []any, rows [][]any) error

	// AppendRows anexa linhas após o conteúdo existente, preservando o
	// cabeçalho e as linhas anteriores.
	AppendRows(ctx context.Context, spreadsheetID, sheetName string, rows [][]any) error
}

type GoogleSheetsStore struct {
	service *sheets.Service
}

// NewGoogleSheetsStore cria o cliente do Google Sheets. As credenciais vêm do
// arquivo apontado pela configuração ou das Application Default Credentials.
func NewGoogleSheetsStore(ctx context.Context, cfg *config.Config) (Store, error) {
	opts := []option.ClientOption{
		option.WithScopes(sheets.SpreadsheetsScope),
	}

	if cfg.Sheets.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o cliente do Google Sheets: %w", err)
	}

	return &GoogleSheetsStore{service: service}, nil
}

func (s *GoogleSheetsStore) ReadRows(ctx context.Context, spreadsheetID, sheetName string) ([][]any, error) {
	resp, err := s.service.Spreadsheets.Values.Get(spreadsheetID, sheetName).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a aba %q: %w", sheetName, err)
	}

	return resp.Values, nil
}

func (s *GoogleSheetsStore) ReplaceAll(ctx context.Context, spreadsheetID, sheetName string, header []any, rows [][]any) error {
	_, err := s.service.Spreadsheets.Values.
		Clear(spreadsheetID, sheetName, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao limpar a aba %q: %w", sheetName, err)
	}

	values := make([][]any, 0, len(rows)+1)
	values = append(values, header)
	values = append(values, rows...)

	_, err = s.service.Spreadsheets.Values.
		Update(spreadsheetID, sheetName, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao sobrescrever a aba %q: %w", sheetName, err)
	}

	return nil
}

func (s *GoogleSheetsStore) AppendRows(ctx context.Context, spreadsheetID, sheetName string, rows [][]any) error {
	_, err := s.service.Spreadsheets.Values.
		Append(spreadsheetID, sheetName, &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("erro ao anexar linhas na aba %q: %w", sheetName, err)
	}

	return nil
}
