package ontario

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-stats-api/schema"
)

const logPrefix = "ontario"

// labels of the status table rows on the ontario page
const (
	labelConfirmed = "Confirmed positive"
	labelResolved  = "Resolved"
	labelDeceased  = "Deceased"
)

var (
	ErrFetchFailed      = errors.New("fetch official page fail")
	ErrInvalidPage      = errors.New("invalid official page")
	ErrExtractionFailed = errors.New("official figures not found in page")
)

// Official - interface to get the figures published by a government page
type Official interface {
	Get(ctx context.Context) (schema.OfficialCount, error)
}

// the drupal api wraps the page body in json
type drupalPage struct {
	Body struct {
		Und []struct {
			SafeValue string `json:"safe_value"`
		} `json:"und"`
	} `json:"body"`
}

type ontario struct {
	client *http.Client
	url    string
}

func (o ontario) Get(ctx context.Context) (schema.OfficialCount, error) {
	data, err := o.page(ctx)
	if err != nil {
		return schema.OfficialCount{}, err
	}

	var page drupalPage
	if err := json.Unmarshal(data, &page); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("decode page json")
		return schema.OfficialCount{}, fmt.Errorf("%w: %s", ErrInvalidPage, err)
	}
	if len(page.Body.Und) == 0 {
		return schema.OfficialCount{}, fmt.Errorf("%w: empty body", ErrInvalidPage)
	}

	return Extract(page.Body.Und[0].SafeValue)
}

func (o ontario) page(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}

	resp, err := o.client.Do(req)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": o.url, "error": err}).Error("get official page")
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrFetchFailed, resp.Status)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Error("read official page response")
		return nil, fmt.Errorf("%w: %s", ErrFetchFailed, err)
	}
	return data, nil
}

// Extract reads the confirmed, resolved and deceased figures from the status
// table of the page html. A figure which can not be found is left empty.
func Extract(html string) (schema.OfficialCount, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewBufferString(html))
	if err != nil {
		return schema.OfficialCount{}, fmt.Errorf("%w: %s", ErrInvalidPage, err)
	}

	count := schema.OfficialCount{
		Confirmed: cellAfter(doc, labelConfirmed),
		Resolved:  cellAfter(doc, labelResolved),
		Deceased:  cellAfter(doc, labelDeceased),
	}

	if count.Empty() {
		return count, ErrExtractionFailed
	}
	return count, nil
}

// cellAfter returns the number in the second cell of the first table row
// which contains label
func cellAfter(doc *goquery.Document, label string) string {
	row := doc.Find("tr").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), label)
	}).First()

	text := strings.TrimSpace(row.Children().Eq(1).Text())
	text = strings.Replace(text, ",", "", -1)
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "label": label, "text": text}).Warn("no figure for label")
		return ""
	}
	return text
}

// New - new ontario official page client
func New(client *http.Client, url string) Official {
	if client == nil {
		client = http.DefaultClient
	}

	return &ontario{
		client: client,
		url:    url,
	}
}
