package fpl

import "time"

const (
	defaultBaseURL     = "https://fantasy.premierleague.com/api"
	defaultHTTPTimeout = 10 * time.Second

	endpointBootstrap = "/bootstrap-static/"
	endpointFixtures  = "/fixtures/"
)
