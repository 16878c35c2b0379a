package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/multiversx/mx-chain-tax-ledger-go/api/shared"
)

const requestTimeout = 10 * time.Second

// errNodeResponse signals that the node answered with an error
var errNodeResponse = errors.New("node responded with error")

type apiResponse struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error string                     `json:"error"`
	Code  shared.ReturnCode          `json:"code"`
}

type ledgerClient struct {
	baseURL    string
	httpClient *http.Client
}

func newLedgerClient(nodeURL string) *ledgerClient {
	return &ledgerClient{
		baseURL:    strings.TrimSuffix(nodeURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// get fetches the path and decodes the data field stored under key into value
func (lc *ledgerClient) get(path string, key string, value interface{}) error {
	request, err := http.NewRequest(http.MethodGet, lc.baseURL+path, nil)
	if err != nil {
		return err
	}

	return lc.do(request, key, value)
}

func (lc *ledgerClient) post(path string, payload interface{}, key string, value interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	request, err := http.NewRequest(http.MethodPost, lc.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	return lc.do(request, key, value)
}

func (lc *ledgerClient) do(request *http.Request, key string, value interface{}) error {
	response, err := lc.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	decoded := &apiResponse{}
	err = json.Unmarshal(body, decoded)
	if err != nil {
		return fmt.Errorf("%w, status %d: %s", errNodeResponse, response.StatusCode, strings.TrimSpace(string(body)))
	}
	if decoded.Code != shared.ReturnCodeSuccess {
		return fmt.Errorf("%w, code %s: %s", errNodeResponse, decoded.Code, decoded.Error)
	}

	raw, found := decoded.Data[key]
	if !found {
		return fmt.Errorf("%w: missing field %s", errNodeResponse, key)
	}

	return json.Unmarshal(raw, value)
}
