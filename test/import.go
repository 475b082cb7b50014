package test

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// LoadTestFile reads a card statement fixture from the testdata directory and
// wraps it in a multipart body as the import endpoints expect it.
//
// It returns the body and the headers to send with the request.
func LoadTestFile(t *testing.T, filePath string) (*bytes.Buffer, map[string]string) {
	file, err := os.Open(filepath.Join("../../../testdata", filePath))
	require.NoError(t, err)
	defer file.Close()

	body := new(bytes.Buffer)
	mw := multipart.NewWriter(body)

	w, err := mw.CreateFormFile("file", filePath)
	require.NoError(t, err)

	_, err = io.Copy(w, file)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return body, map[string]string{"Content-Type": mw.FormDataContentType()}
}
