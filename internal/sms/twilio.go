// Package sms sends text messages through Twilio.
package sms

import (
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Client struct {
	rest *twilio.RestClient
	from string
}

func NewClient(accountSID, authToken, from string) *Client {
	return &Client{
		rest: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

// Send delivers one SMS and returns the Twilio message SID.
func (c *Client) Send(to, body string) (string, error) {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	msg, err := c.rest.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if msg.Sid != nil {
		return *msg.Sid, nil
	}
	return "", nil
}
