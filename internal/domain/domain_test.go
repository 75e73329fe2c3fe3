package domain

import (
	"encoding/json"
	"testing"
)

func TestTrade_UnmarshalOptionalFields(t *testing.T) {
	raw := []byte(`{
		"id":"t1","symbol":"BTCUSDT","type":"buy","entryPrice":64000,
		"quantity":0.05,"entryTime":1700000000000,"status":"open",
		"reason":"breakout","confidence":82,"aiModel":"prophet-v2.3"
	}`)
	var tr Trade
	if err := json.Unmarshal(raw, &tr); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if tr.ExitPrice != nil || tr.ExitTime != nil || tr.Profit != nil {
		t.Fatalf("open trade must have nil exit fields: %+v", tr)
	}
	if tr.Status != TradeStatusOpen || tr.Type != TradeTypeBuy {
		t.Fatalf("unexpected enums: %s %s", tr.Status, tr.Type)
	}
}

func TestSettingsPatch_MarshalOmitsUnsetFields(t *testing.T) {
	risk := 3.5
	b, err := json.Marshal(SettingsPatch{RiskPercentage: &risk})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(b) != `{"riskPercentage":3.5}` {
		t.Fatalf("unexpected patch body: %s", b)
	}
}

func TestBotLog_DataStaysOpaque(t *testing.T) {
	raw := []byte(`{"id":"l1","timestamp":1,"level":"info","message":"m","data":{"weird":[1,"x",null]}}`)
	var l BotLog
	if err := json.Unmarshal(raw, &l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if string(l.Data) != `{"weird":[1,"x",null]}` {
		t.Fatalf("data should round-trip untouched: %s", l.Data)
	}

	out, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back BotLog
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal failed: %v", err)
	}
	if string(back.Data) != string(l.Data) {
		t.Fatalf("opaque payload changed: %s != %s", back.Data, l.Data)
	}
}
