package banxico

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/config"
)

// Client fetches the TIIE reference rate from Banxico's SIE feed. The
// rate is shown when pricing a new credit; the service keeps working
// when the feed is unreachable.
type Client struct {
	url    string
	token  string
	client *http.Client
	log    *logrus.Logger
}

// NewClient initializes a new Banxico client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:   cfg.BanxicoURL,
		token: cfg.BanxicoToken,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// sendRequest fetches the latest observation document from SIE
func (c *Client) sendRequest() ([]byte, error) {
	req, err := http.NewRequest("GET", c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Accept", "application/xml")
	if c.token != "" {
		req.Header.Set("Bmx-Token", c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("Banxico XML response: %s", string(body))
	return body, nil
}

// parseXMLResponse extracts the most recent observation value
func (c *Client) parseXMLResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %v", err)
	}

	obs := doc.FindElements("//serie/Obs")
	if len(obs) == 0 {
		return 0, fmt.Errorf("no observations found in XML")
	}

	latest := obs[len(obs)-1]
	dato := latest.FindElement("./dato")
	if dato == nil {
		return 0, fmt.Errorf("dato element not found in XML")
	}

	rate, err := strconv.ParseFloat(dato.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate: %v", err)
	}
	return rate, nil
}

// GetReferenceRate retrieves the current TIIE rate and adds the house
// margin used as the suggested rate for new credits.
func (c *Client) GetReferenceRate() (float64, error) {
	body, err := c.sendRequest()
	if err != nil {
		return 0, err
	}

	rate, err := c.parseXMLResponse(body)
	if err != nil {
		return 0, err
	}

	const houseMargin = 5.0
	rate += houseMargin

	c.log.Infof("Retrieved reference rate: %.2f%% (including %.2f%% house margin)", rate, houseMargin)
	return rate, nil
}
