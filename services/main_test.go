package services

import (
	"os"
	"testing"

	"kickconnect.net/configs/configslog"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}
