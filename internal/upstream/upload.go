package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	xerrors "shopfront-service/internal/pkg/errors"
)

// UploadFile forwards a product image to the upstream upload endpoint and
// returns the public URL assigned to it.
func (c *Client) UploadFile(ctx context.Context, token, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", xerrors.Wrap(err, "failed to build multipart body")
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", xerrors.Wrap(err, "failed to copy upload body")
	}
	if err := writer.Close(); err != nil {
		return "", xerrors.Wrap(err, "failed to finalize multipart body")
	}

	raw, err := c.do(ctx, http.MethodPost, "/upload/uploadFile", token, &buf, writer.FormDataContentType())
	if err != nil {
		return "", err
	}

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			PublicURL string `json:"publicUrl"`
		} `json:"data"`
		Message string `json:"message"`
	}
	if err := decode(raw, &body); err != nil {
		return "", err
	}
	if !body.Success || body.Data.PublicURL == "" {
		return "", fmt.Errorf("upload rejected (%s): %w",
			body.Message, xerrors.ErrValidation)
	}
	return body.Data.PublicURL, nil
}
