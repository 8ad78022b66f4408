//go:build http_enabled

package main

import (
	"bytes"
	"context"
	"fmt"
	"github.com/google/uuid"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"
)

const submitPlaythroughUrl = "https://playful-patterns.com/submit-playthrough-tetris.php"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// postForm sends fields and files as a multipart form and returns the body of
// the response.
func postForm(url string, fields map[string]string, files map[string][]byte) string {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for k, v := range fields {
		Check(form.WriteField(k, v))
	}
	for k, v := range files {
		part, err := form.CreateFormFile(k, k)
		Check(err)
		_, err = part.Write(v)
		Check(err)
	}
	Check(form.Close())

	ctx, cancel := context.WithTimeout(context.Background(), httpClient.Timeout)
	defer cancel()
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	Check(err)
	request.Header.Set("content-type", form.FormDataContentType())

	response, err := httpClient.Do(request)
	Check(err)
	defer func(b io.ReadCloser) { Check(b.Close()) }(response.Body)
	if response.StatusCode != http.StatusOK {
		Check(fmt.Errorf("POST %s failed: %s", url, response.Status))
	}
	data, err := io.ReadAll(response.Body)
	Check(err)
	return string(data)
}

func playthroughFields(user string, releaseVersion, simulationVersion,
	inputVersion int64, id uuid.UUID) map[string]string {
	return map[string]string{
		"user":               user,
		"release_version":    strconv.FormatInt(releaseVersion, 10),
		"simulation_version": strconv.FormatInt(simulationVersion, 10),
		"input_version":      strconv.FormatInt(inputVersion, 10),
		"id":                 id.String(),
	}
}

// InitializeIdInDbHttp registers a playthrough before any of it is played, so
// that sessions that never reach a game over still show up.
func InitializeIdInDbHttp(user string, releaseVersion, simulationVersion,
	inputVersion int64, id uuid.UUID) {
	postForm(submitPlaythroughUrl,
		playthroughFields(user, releaseVersion, simulationVersion,
			inputVersion, id), nil)
}

func UploadDataToDbHttp(user string, releaseVersion, simulationVersion,
	inputVersion int64, id uuid.UUID, data []byte) {
	postForm(submitPlaythroughUrl,
		playthroughFields(user, releaseVersion, simulationVersion,
			inputVersion, id),
		map[string][]byte{"playthrough": data})
}
