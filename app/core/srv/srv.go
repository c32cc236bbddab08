package srv

import (
	"github.com/ChungNYCU/jtcg-assignment/pkg/ai"
	"github.com/ChungNYCU/jtcg-assignment/pkg/handover"
)

type Srv struct {
	ai       *AI
	handover handover.Transport
}

type ApplyFunc func(*Srv)

func SetupSrvs(opts ...ApplyFunc) *Srv {
	s := &Srv{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Srv) AI() *AI {
	return s.ai
}

func (s *Srv) Handover() handover.Transport {
	return s.handover
}

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		driver, err := SetupAI(cfg)
		if err != nil {
			panic(err)
		}
		s.ai = driver
	}
}

func ApplyHandover(t handover.Transport) ApplyFunc {
	return func(s *Srv) {
		s.handover = t
	}
}

// ApplyAIDriver 直接注入 driver，測試替身用。
func ApplyAIDriver(d ai.Driver) ApplyFunc {
	return func(s *Srv) {
		s.ai = &AI{driver: d}
	}
}
