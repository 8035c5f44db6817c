package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogProgress(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := NewLogProgress(zap.New(core))
	p.Every = 2

	p.Found(KindItems, 3)
	for i := 0; i < 3; i++ {
		p.Step(KindItems)
	}
	p.Done(KindItems, 4)

	assert.Equal(t, 1, logs.FilterMessage("Indexing").Len())
	done := logs.FilterMessage("Indexed assets").All()
	if assert.Len(t, done, 1) {
		assert.Equal(t, int64(3), done[0].ContextMap()["processed"])
		assert.Equal(t, int64(4), done[0].ContextMap()["rows"])
	}
}

func TestLogProgress_StepBeforeFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := &LogProgress{Logger: zap.New(core), Every: 1}

	assert.NotPanics(t, func() { p.Step(KindBlueprints) })
	assert.Equal(t, 1, logs.FilterMessage("Indexing").Len())

	p.Done(KindBlueprints, 1)
	assert.Equal(t, int64(1), logs.FilterMessage("Indexed assets").All()[0].ContextMap()["processed"])
}
