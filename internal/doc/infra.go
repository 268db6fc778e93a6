package doc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

type converterResp struct {
	Text string `json:"text"`
}

// HTTPConverter ходит в отдельный сервис конвертации (pdf → текст).
type HTTPConverter struct {
	URL string
}

func NewHTTPConverter() *HTTPConverter {
	url := os.Getenv("DOC_SERVICE_URL")
	if url == "" {
		url = "http://doc_converter:8000/convert"
	}
	return &HTTPConverter{URL: url}
}

func (c *HTTPConverter) ConvertToText(ctx context.Context, data []byte) (string, error) {
	log.Printf("[doc.conv] sending %d bytes to %s", len(data), c.URL)

	req, err := http.NewRequestWithContext(ctx, "POST", c.URL, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("doc converter: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("doc converter bad status %d", resp.StatusCode)
	}

	var out converterResp
	if err := json.Unmarshal(body, &out); err != nil {
		return "", err
	}

	log.Printf("[doc.conv] text length received: %d", len(out.Text))

	return out.Text, nil
}
