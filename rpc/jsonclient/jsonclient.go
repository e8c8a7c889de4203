// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonclient 实现 json rpc 客户端请求功能
package jsonclient

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// JSONClient a object of jsonclient
type JSONClient struct {
	url    string
	client *http.Client
}

func addPrefix(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "http://" + url
}

// NewJSONClient produce a json object
func NewJSONClient(url string) (*JSONClient, error) {
	if url == "" {
		return nil, errors.New("empty rpc url")
	}
	return &JSONClient{url: addPrefix(url), client: &http.Client{Timeout: 30 * time.Second}}, nil
}

type clientRequest struct {
	Method string         `json:"method"`
	Params [1]interface{} `json:"params"`
	ID     uint64         `json:"id"`
}

type clientResponse struct {
	ID     uint64           `json:"id"`
	Result *json.RawMessage `json:"result"`
	Error  interface{}      `json:"error"`
}

// Call jsonclient call method
func (client *JSONClient) Call(method string, params, resp interface{}) error {
	if params == nil {
		params = struct{}{}
	}
	req := &clientRequest{Method: method, ID: 1}
	req.Params[0] = params
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	postresp, err := client.client.Post(client.url, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer postresp.Body.Close()
	b, err := ioutil.ReadAll(postresp.Body)
	if err != nil {
		return err
	}
	if postresp.StatusCode != http.StatusOK {
		return fmt.Errorf("rpc %s: http status %d", method, postresp.StatusCode)
	}
	cresp := &clientResponse{}
	if err := json.Unmarshal(b, cresp); err != nil {
		return errors.Wrapf(err, "decode response of %s", method)
	}
	if cresp.Error != nil {
		switch e := cresp.Error.(type) {
		case string:
			return errors.New(e)
		default:
			return fmt.Errorf("%v", e)
		}
	}
	if cresp.Result == nil {
		return errors.New("empty result")
	}
	if resp == nil {
		return nil
	}
	return json.Unmarshal(*cresp.Result, resp)
}
