package game

import "testing"

var windows = Windows{Just: 25, Great: 50, Good: 100, Poor: 150}

type tierResult struct {
	Tier Tier
	Ok   bool
}

var tierTests = map[int64]tierResult{
	0:   {Just, true},
	24:  {Just, true},
	25:  {Just, true}, // boundary resolves to the stricter tier
	26:  {Great, true},
	50:  {Great, true},
	51:  {Good, true},
	100: {Good, true},
	101: {Poor, true},
	150: {Poor, true},
	151: {Miss, false},
	999: {Miss, false},
}

func TestTier(t *testing.T) {
	for delta, expected := range tierTests {
		tier, ok := windows.Tier(delta)
		if tier != expected.Tier || ok != expected.Ok {
			t.Log("delta   ", delta)
			t.Log("got     ", tier, ok)
			t.Log("expected", expected.Tier, expected.Ok)
			t.Fail()
		}
	}
}

var validateTests = map[Windows]bool{
	{Just: 25, Great: 50, Good: 100, Poor: 150}: true,
	{Just: 25, Great: 25, Good: 25, Poor: 25}:   true,
	{}: false,
	{Just: -5, Great: 50, Good: 100, Poor: 150}: false,
	{Just: 50, Great: 25, Good: 100, Poor: 150}: false,
	{Just: 25, Great: 50, Good: 150, Poor: 100}: false,
}

func TestValidate(t *testing.T) {
	for w, valid := range validateTests {
		err := w.Validate()
		if (err == nil) != valid {
			t.Log("windows ", w)
			t.Log("err     ", err)
			t.Fail()
		}
	}
}

var result Tier

func BenchmarkTier(b *testing.B) {
	var total Tier
	for n := 0; n < b.N; n++ {
		tier, _ := windows.Tier(int64(n % 200))
		total += tier
	}
	result = total
}
