package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rafaelqg/painel-vendas/internal/utils"
)

// Fetcher baixa exports CSV hospedados remotamente (planilhas publicadas).
// Falhas de rede e respostas que não são CSV viram um único erro de topo;
// nunca há erro por linha.
type Fetcher struct {
	c HTTPClient
}

func NewFetcher(c HTTPClient) *Fetcher {
	return &Fetcher{c: c}
}

var sheetIDRe = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// SheetExportURL deriva a URL de export CSV a partir de uma URL de planilha
// do Google Sheets colada pelo usuário.
func SheetExportURL(raw string) (string, error) {
	m := sheetIDRe.FindStringSubmatch(raw)
	if m == nil {
		return "", errors.New("URL de planilha inválida")
	}
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=csv", m[1]), nil
}

const maxBodySize = 32 << 20 // 32 MiB por export

// FetchCSV busca o corpo CSV com retry (backoff exponencial + jitter).
func (f *Fetcher) FetchCSV(ctx context.Context, url string) (string, error) {
	if url == "" {
		return "", errors.New("empty url")
	}

	var body string
	bo := utils.NewBackoff(100*time.Millisecond, 2)
	err := bo.Do(func(i int) error {
		if i > 0 {
			time.Sleep(time.Duration(rand.Intn(150)) * time.Millisecond)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := f.c.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return fmt.Errorf("non-2xx: %d body=%s", resp.StatusCode, string(b))
		}
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return err
		}
		body = string(b)
		return nil
	})
	if err != nil {
		return "", err
	}

	// Planilha não pública devolve a página de login em HTML.
	if looksLikeHTML(body) {
		return "", errors.New("resposta não é CSV")
	}
	return body, nil
}

func looksLikeHTML(body string) bool {
	head := strings.ToLower(strings.TrimSpace(body))
	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

// FetchSheet resolve a URL da planilha e baixa o export em um passo.
func (f *Fetcher) FetchSheet(ctx context.Context, sheetURL string) (string, error) {
	exportURL, err := SheetExportURL(sheetURL)
	if err != nil {
		return "", err
	}
	return f.FetchCSV(ctx, exportURL)
}
