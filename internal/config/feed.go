// Package config provides configuration utilities for the application.
package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/liwesley02/order-up/internal/common"
	"github.com/liwesley02/order-up/internal/feed"
)

// LoadFeed builds the order feed from Viper and environment variables.
// Precedence:
// 1. Viper configuration (from config file or ORDERUP_ env vars)
// 2. Direct environment variables (ORDER_FEED_URL, ORDER_FEED_FILE)
func LoadFeed() (feed.Feed, error) {
	url := viper.GetString("feed.url")
	if url == "" {
		url = os.Getenv("ORDER_FEED_URL")
	}
	file := viper.GetString("feed.file")
	if file == "" {
		file = os.Getenv("ORDER_FEED_FILE")
	}

	switch {
	case url != "":
		token := viper.GetString("feed.token")
		if token == "" {
			token = os.Getenv("ORDER_FEED_TOKEN")
		}
		var opts []feed.HTTPOption
		if token != "" {
			opts = append(opts, feed.WithAuthToken(token))
		}
		return feed.NewHTTPFeed(url, opts...)
	case file != "":
		return feed.NewFileFeed(ExpandPath(file))
	default:
		return nil, common.NewUserError(
			"no order feed configured; set feed.url or feed.file",
			common.ErrMissingConfig)
	}
}
