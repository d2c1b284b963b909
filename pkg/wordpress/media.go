package wordpress

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strconv"

	// Packages
	mimetype "github.com/gabriel-vasile/mimetype"
	client "github.com/mutablelogic/go-client"
	gomultipart "github.com/mutablelogic/go-client/pkg/multipart"
	wpmcp "github.com/mutablelogic/go-wpmcp"
	schema "github.com/mutablelogic/go-wpmcp/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type reqUploadMedia struct {
	File    gomultipart.File `json:"file"`
	Title   string           `json:"title,omitempty"`
	AltText string           `json:"alt_text,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// UploadMedia uploads the contents of r as an attachment named filename.
// When the name has no extension, one is added from the detected media type.
func (c *Client) UploadMedia(ctx context.Context, filename string, r io.Reader, meta schema.MediaRequest) (*schema.Media, error) {
	filename = filepath.Base(filename)
	if filename == "." || filename == string(filepath.Separator) {
		return nil, wpmcp.ErrBadParameter.With("missing file name")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wpmcp.ErrBadParameter.With(err)
	} else if len(data) == 0 {
		return nil, wpmcp.ErrBadParameter.Withf("%q is empty", filename)
	}
	if filepath.Ext(filename) == "" {
		filename += mimetype.Detect(data).Extension()
	}

	// Upload the file
	payload, err := client.NewStreamingMultipartRequest(reqUploadMedia{
		File: gomultipart.File{
			Path: filename,
			Body: io.NopCloser(bytes.NewReader(data)),
		},
		Title:   meta.Title,
		AltText: meta.AltText,
	}, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}
	var response schema.Media
	if err := c.upload.DoWithContext(ctx, payload, &response, client.OptPath("media")); err != nil {
		return nil, remoteErr(err)
	}

	// Some installations ignore form fields, so apply the metadata explicitly
	if meta.Title == "" && meta.AltText == "" {
		return &response, nil
	}
	return c.UpdateMedia(ctx, response.ID, meta)
}

// UpdateMedia sets the title and alternative text of an attachment
func (c *Client) UpdateMedia(ctx context.Context, id uint64, meta schema.MediaRequest) (*schema.Media, error) {
	if id == 0 {
		return nil, wpmcp.ErrBadParameter.With("missing media id")
	}

	payload, err := client.NewJSONRequestEx(http.MethodPut, meta, client.ContentTypeJson)
	if err != nil {
		return nil, err
	}

	var response schema.Media
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("media", strconv.FormatUint(id, 10))); err != nil {
		return nil, remoteErr(err)
	}
	return &response, nil
}
