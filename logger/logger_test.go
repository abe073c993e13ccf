package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	Init()

	assert.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	err := SetLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
}
