package test

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

func bodyString(resp *http.Response) string {
	body := resp.Body
	defer body.Close()

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return "[!] error: failed to read response body: " + err.Error()
	}

	return string(bodyBytes)
}

// query encodes key/value pairs, keeping repeated keys in order.
func query(pairs ...string) string {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Add(pairs[i], pairs[i+1])
	}
	return v.Encode()
}

func writeDataset(content string) (string, error) {
	dir, err := os.MkdirTemp("", "attritiond-test-")
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "EA.csv")
	return p, os.WriteFile(p, []byte(content), 0o644)
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
