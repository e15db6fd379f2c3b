//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/nulvox/TabConverter/cmd"
	"github.com/nulvox/TabConverter/model"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	exitVal := m.Run()
	os.Exit(exitVal)
}

func postJSON(t *testing.T, path string, body any, handler http.HandlerFunc) (*http.Response, []byte) {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	handler(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody
}

func TestConvertE2E(t *testing.T) {
	assert := assert.New(t)

	reqBody := model.ConvertRequest{
		Lines: []string{
			"Intro",
			"E2|--0--3--",
			"A2|-2---5--",
		},
		TargetTuning: []string{"F#2", "B2"},
	}
	resp, respBody := postJSON(t, "/convert", reqBody, cmd.HandleConvert)
	assert.Equal(200, resp.StatusCode)

	var tabResponse model.TabResponse
	err := json.Unmarshal(respBody, &tabResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal([]string{
		"Intro",
		"F#|--2--5--",
		"B|-4---7--",
	}, tabResponse.Lines)
	assert.Equal([]string{"detected source tuning"}, tabResponse.Diagnostics)
}

func TestMergeE2E(t *testing.T) {
	assert := assert.New(t)

	reqBody := model.MergeRequest{
		Inputs: []model.MergeInput{
			{Name: "bass.tab", Lines: []string{"E1|0--"}},
			{Name: "lead.tab", Lines: []string{"E4|0--"}},
		},
		TargetTuning: []string{"E1", "E4"},
	}
	resp, respBody := postJSON(t, "/merge", reqBody, cmd.HandleMerge)
	assert.Equal(200, resp.StatusCode)

	var tabResponse model.TabResponse
	err := json.Unmarshal(respBody, &tabResponse)
	if err != nil {
		panic(err.Error())
	}

	assert.Equal([]string{
		"E4|0--",
		"E1|0--",
	}, tabResponse.Lines)
}

func TestMergeE2ERequiresTargetTuning(t *testing.T) {
	assert := assert.New(t)

	reqBody := model.MergeRequest{
		Inputs: []model.MergeInput{{Lines: []string{"E2|-0-"}}},
	}
	resp, respBody := postJSON(t, "/merge", reqBody, cmd.HandleMerge)
	assert.Equal(http.StatusBadRequest, resp.StatusCode)

	var errResponse model.ErrorResponse
	err := json.Unmarshal(respBody, &errResponse)
	if err != nil {
		panic(err.Error())
	}
	assert.NotEmpty(errResponse.Error)
}
