package csse

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const logPrefix = "csse"

var (
	ErrFetchFailed     = errors.New("fetch daily report fail")
	ErrDatasetNotFound = errors.New("daily report not found")
)

// Dataset - interface to fetch csse daily reports
type Dataset interface {
	Daily(ctx context.Context, date string) ([]byte, error)
}

type csse struct {
	client *http.Client
	url    string
}

// Daily returns the raw csv of the report of date (MM-DD-YYYY)
func (c csse) Daily(ctx context.Context, date string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s.csv", c.url, date)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}

	resp, err := c.client.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "error": err}).Error("get daily report")
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url}).Debug("daily report not published")
		return nil, ErrDatasetNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": url, "status": resp.Status}).Error("get daily report")
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetchFailed, resp.Status)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("read daily report response")
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}

	return data, nil
}

// New - new csse daily report client. Reports are looked up under baseURL.
func New(client *http.Client, baseURL string) Dataset {
	if client == nil {
		client = http.DefaultClient
	}

	return &csse{
		client: client,
		url:    strings.TrimRight(baseURL, "/"),
	}
}
