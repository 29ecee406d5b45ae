package calculator

import "ScalpRadar/internal/model"

// DetectFairValueGaps scans consecutive bar triplets (i-2, i-1, i) for
// three-bar price discontinuities. A bullish gap exists when low[i] clears
// high[i-2], a bearish gap when high[i] stays under low[i-2]. The most recent
// gap of each kind is returned; nil when none exists.
func DetectFairValueGaps(bars []model.Bar) (bull, bear *model.Zone) {
	if len(bars) < 3 {
		return nil, nil
	}
	for i := 2; i < len(bars); i++ {
		if bars[i].Low > bars[i-2].High {
			z := model.NewZone(bars[i-2].High, bars[i].Low, bars[i].Time)
			bull = &z
		}
		if bars[i].High < bars[i-2].Low {
			z := model.NewZone(bars[i].High, bars[i-2].Low, bars[i].Time)
			bear = &z
		}
	}
	return bull, bear
}
