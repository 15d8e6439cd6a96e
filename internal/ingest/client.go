package ingest

import (
	"net/http"
	"time"
)

// HTTPClient é a superfície mínima usada para buscar exports remotos;
// os testes injetam fakes por aqui.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &http.Client{Timeout: timeout}
}
