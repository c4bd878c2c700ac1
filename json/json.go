// Package json is the wire codec for the transport layer: batch-import
// requests carrying named source files in, aggregate status replies out.
// Field names use the transport's camelCase convention, so payloads are
// interchangeable with the host-side plugin messages.
package json

import (
	"encoding/json"
	"fmt"
	"io"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// fileDTO is the JSON representation of one source file.
type fileDTO struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// batchRequest is the wire format of a batch-import request.
type batchRequest struct {
	Files []fileDTO `json:"files"`
}

// statusReply is the wire format of the aggregate status message.
type statusReply struct {
	ProcessedCount int    `json:"processedCount"`
	FailedCount    int    `json:"failedCount,omitempty"`
	Outcome        string `json:"outcome,omitempty"`
}

// MarshalBatch serializes source files into a batch-import request.
func MarshalBatch(files []mdfw.SourceFile) ([]byte, error) {
	req := batchRequest{Files: make([]fileDTO, len(files))}
	for i, f := range files {
		req.Files[i] = fileDTO{Name: f.Name, Content: f.Content}
	}
	return json.Marshal(req)
}

// UnmarshalBatch deserializes a batch-import request.
func UnmarshalBatch(data []byte) ([]mdfw.SourceFile, error) {
	var req batchRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("unmarshal batch request: %w", err)
	}
	files := make([]mdfw.SourceFile, len(req.Files))
	for i, f := range req.Files {
		files[i] = mdfw.SourceFile{Name: f.Name, Content: f.Content}
	}
	return files, nil
}

// ReadBatch reads and deserializes a batch-import request from r.
func ReadBatch(r io.Reader) ([]mdfw.SourceFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read batch request: %w", err)
	}
	return UnmarshalBatch(data)
}

// MarshalStatus serializes a batch result into the status reply.
func MarshalStatus(res mdfw.Result) ([]byte, error) {
	return json.Marshal(statusReply{
		ProcessedCount: res.Succeeded,
		FailedCount:    res.Failed,
		Outcome:        string(res.Outcome()),
	})
}

// UnmarshalStatus deserializes a status reply back into counts.
func UnmarshalStatus(data []byte) (mdfw.Result, error) {
	var reply statusReply
	if err := json.Unmarshal(data, &reply); err != nil {
		return mdfw.Result{}, fmt.Errorf("unmarshal status reply: %w", err)
	}
	return mdfw.Result{Succeeded: reply.ProcessedCount, Failed: reply.FailedCount}, nil
}
