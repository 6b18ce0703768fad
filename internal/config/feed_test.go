package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liwesley02/order-up/internal/common"
	"github.com/liwesley02/order-up/internal/feed"
)

func TestLoadFeed(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("url takes precedence", func(t *testing.T) {
		viper.Reset()
		viper.Set("feed.url", "https://orders.example.com/live")
		viper.Set("feed.file", "/tmp/orders.json")

		f, err := LoadFeed()
		require.NoError(t, err)
		assert.IsType(t, &feed.HTTPFeed{}, f)
	})

	t.Run("file feed", func(t *testing.T) {
		viper.Reset()
		viper.Set("feed.file", "/tmp/orders.json")

		f, err := LoadFeed()
		require.NoError(t, err)
		assert.IsType(t, &feed.FileFeed{}, f)
	})

	t.Run("nothing configured", func(t *testing.T) {
		viper.Reset()
		t.Setenv("ORDER_FEED_URL", "")
		t.Setenv("ORDER_FEED_FILE", "")

		_, err := LoadFeed()
		assert.ErrorIs(t, err, common.ErrMissingConfig)
	})
}

func TestExpandPath(t *testing.T) {
	t.Setenv("ORDERUP_TEST_DIR", "/data")

	assert.Equal(t, "/data/orderup.db", ExpandPath("$ORDERUP_TEST_DIR/orderup.db"))
	assert.Equal(t, "", ExpandPath(""))
}
