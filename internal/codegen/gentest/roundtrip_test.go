package gentest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	bin "github.com/gagliardetto/binary"
	solana "github.com/gagliardetto/solana-go"
)

var testAuthority = solana.MustPublicKeyFromBase58("TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA")

func TestCounterAccountRoundTrip(t *testing.T) {
	label := "primary"
	tests := []struct {
		name string
		obj  *Counter
	}{
		{"label set", &Counter{Count: 42, Authority: testAuthority, Label: &label}},
		{"label absent", &Counter{Count: 7, Authority: testAuthority}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeCounterAccount(tt.obj)
			if err != nil {
				t.Fatalf("EncodeCounterAccount() error = %v", err)
			}
			if !bytes.Equal(data[:8], CounterDiscriminator[:]) {
				t.Errorf("frame prefix = %x; want %x", data[:8], CounterDiscriminator)
			}

			got, err := DecodeCounterAccount(data)
			if err != nil {
				t.Fatalf("DecodeCounterAccount() error = %v", err)
			}
			if got.Count != tt.obj.Count {
				t.Errorf("Count = %d; want %d", got.Count, tt.obj.Count)
			}
			if got.Authority != tt.obj.Authority {
				t.Errorf("Authority = %s; want %s", got.Authority, tt.obj.Authority)
			}
			switch {
			case tt.obj.Label == nil:
				if got.Label != nil {
					t.Errorf("Label = %q; want nil", *got.Label)
				}
			case got.Label == nil:
				t.Errorf("Label = nil; want %q", *tt.obj.Label)
			case *got.Label != *tt.obj.Label:
				t.Errorf("Label = %q; want %q", *got.Label, *tt.obj.Label)
			}
		})
	}
}

func TestDecodeCounterAccountTooShort(t *testing.T) {
	_, err := DecodeCounterAccount([]byte{1, 2, 3, 4})
	var tooShort PayloadTooShortError
	if !errors.As(err, &tooShort) {
		t.Fatalf("error = %v; want PayloadTooShortError", err)
	}
	if tooShort.Expected != 8 || tooShort.Actual != 4 {
		t.Errorf("PayloadTooShortError = %+v; want Expected 8, Actual 4", tooShort)
	}
}

func TestDecodeCounterAccountMismatch(t *testing.T) {
	data, err := EncodeCounterAccount(&Counter{Count: 1, Authority: testAuthority})
	if err != nil {
		t.Fatalf("EncodeCounterAccount() error = %v", err)
	}
	corrupt := append([]byte(nil), data...)
	corrupt[0] ^= 0xff

	_, err = DecodeCounterAccount(corrupt)
	var mismatch DiscriminatorMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v; want DiscriminatorMismatchError", err)
	}
	if mismatch.Expected != CounterDiscriminator {
		t.Errorf("Expected = %x; want %x", mismatch.Expected, CounterDiscriminator)
	}
	if mismatch.Actual[0] != corrupt[0] {
		t.Errorf("Actual[0] = %x; want %x", mismatch.Actual[0], corrupt[0])
	}
}

func TestActionRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value Action
	}{
		{"unit variant", ActionNoop{}},
		{"payload variant", ActionTransfer{Amount: 99}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			if err := EncodeAction(bin.NewBorshEncoder(buf), tt.value); err != nil {
				t.Fatalf("EncodeAction() error = %v", err)
			}
			got, err := DecodeAction(bin.NewBorshDecoder(buf.Bytes()))
			if err != nil {
				t.Fatalf("DecodeAction() error = %v", err)
			}
			if got != tt.value {
				t.Errorf("round trip = %#v; want %#v", got, tt.value)
			}
		})
	}

	t.Run("unknown variant index", func(t *testing.T) {
		if _, err := DecodeAction(bin.NewBorshDecoder([]byte{9})); err == nil {
			t.Error("DecodeAction() error = nil for out-of-range index")
		}
	})
}

func TestStatusString(t *testing.T) {
	if got := StatusPending.String(); got != "Pending" {
		t.Errorf("String() = %q; want Pending", got)
	}
	if got := Status(9).String(); got != "Status(9)" {
		t.Errorf("String() = %q; want Status(9)", got)
	}
}

func TestRawFixedLayout(t *testing.T) {
	obj := Raw{Flag: 0xab, Total: 0x0102030405060708}

	buf := new(bytes.Buffer)
	if err := obj.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		t.Fatalf("MarshalWithEncoder() error = %v", err)
	}
	want := []byte{0xab, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("wire = %x; want %x", buf.Bytes(), want)
	}

	var got Raw
	if err := got.UnmarshalWithDecoder(bin.NewBorshDecoder(buf.Bytes())); err != nil {
		t.Fatalf("UnmarshalWithDecoder() error = %v", err)
	}
	if got != obj {
		t.Errorf("round trip = %+v; want %+v", got, obj)
	}
}

func TestMetricsFixedLayout(t *testing.T) {
	obj := Metrics{
		Flag:  1,
		Big:   bin.Uint128{Lo: 0x1111222233334444, Hi: 0x5555666677778888},
		Key:   testAuthority,
		Count: 424242,
	}

	buf := new(bytes.Buffer)
	if err := obj.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		t.Fatalf("MarshalWithEncoder() error = %v", err)
	}
	wire := buf.Bytes()
	if len(wire) != MetricsSize {
		t.Fatalf("wire size = %d; want %d", len(wire), MetricsSize)
	}

	// Natural C layout: flag at 0, fifteen padding bytes, then the 128-bit
	// halves, the key, and the count at their aligned offsets.
	if wire[0] != 1 {
		t.Errorf("flag byte = %d; want 1", wire[0])
	}
	for i := 1; i < 16; i++ {
		if wire[i] != 0 {
			t.Errorf("padding byte %d = %d; want 0", i, wire[i])
		}
	}
	if got := binary.LittleEndian.Uint64(wire[16:]); got != obj.Big.Lo {
		t.Errorf("low half = %#x; want %#x", got, obj.Big.Lo)
	}
	if got := binary.LittleEndian.Uint64(wire[24:]); got != obj.Big.Hi {
		t.Errorf("high half = %#x; want %#x", got, obj.Big.Hi)
	}
	if !bytes.Equal(wire[32:64], obj.Key[:]) {
		t.Errorf("key bytes = %x; want %x", wire[32:64], obj.Key[:])
	}
	if got := binary.LittleEndian.Uint64(wire[64:]); got != obj.Count {
		t.Errorf("count = %d; want %d", got, obj.Count)
	}

	var got Metrics
	if err := got.UnmarshalWithDecoder(bin.NewBorshDecoder(wire)); err != nil {
		t.Fatalf("UnmarshalWithDecoder() error = %v", err)
	}
	if got.Flag != obj.Flag || got.Big.Lo != obj.Big.Lo || got.Big.Hi != obj.Big.Hi ||
		got.Key != obj.Key || got.Count != obj.Count {
		t.Errorf("round trip = %+v; want %+v", got, obj)
	}
}

func TestInitializeInstructionRoundTrip(t *testing.T) {
	counter := solana.MustPublicKeyFromBase58("SysvarC1ock11111111111111111111111111111111")
	payer := testAuthority

	t.Run("optional slot omitted", func(t *testing.T) {
		inst, err := NewInitializeInstruction(
			InitializeInstruction{StartValue: 5},
			InitializeAccounts{Counter: counter, Payer: payer},
		)
		if err != nil {
			t.Fatalf("NewInitializeInstruction() error = %v", err)
		}
		if got := inst.ProgramID(); got != ProgramID {
			t.Errorf("ProgramID() = %s; want %s", got, ProgramID)
		}

		metas := inst.Accounts()
		if len(metas) != 2 {
			t.Fatalf("len(Accounts()) = %d; want 2", len(metas))
		}
		if !metas[0].IsWritable || metas[0].IsSigner {
			t.Errorf("counter meta flags = writable %v, signer %v; want writable only",
				metas[0].IsWritable, metas[0].IsSigner)
		}
		if !metas[1].IsWritable || !metas[1].IsSigner {
			t.Errorf("payer meta flags = writable %v, signer %v; want both",
				metas[1].IsWritable, metas[1].IsSigner)
		}

		data, err := inst.Data()
		if err != nil {
			t.Fatalf("Data() error = %v", err)
		}
		if !bytes.Equal(data[:8], InitializeInstructionDiscriminator[:]) {
			t.Errorf("frame prefix = %x; want %x", data[:8], InitializeInstructionDiscriminator)
		}

		parsed, err := ParseInstruction(data)
		if err != nil {
			t.Fatalf("ParseInstruction() error = %v", err)
		}
		args, ok := parsed.(*InitializeInstruction)
		if !ok {
			t.Fatalf("ParseInstruction() = %T; want *InitializeInstruction", parsed)
		}
		if args.StartValue != 5 {
			t.Errorf("StartValue = %d; want 5", args.StartValue)
		}
	})

	t.Run("optional slot set", func(t *testing.T) {
		rent := solana.SysVarRentPubkey
		inst, err := NewInitializeInstruction(
			InitializeInstruction{StartValue: 1},
			InitializeAccounts{Counter: counter, Payer: payer, Rent: &rent},
		)
		if err != nil {
			t.Fatalf("NewInitializeInstruction() error = %v", err)
		}
		metas := inst.Accounts()
		if len(metas) != 3 {
			t.Fatalf("len(Accounts()) = %d; want 3", len(metas))
		}
		if metas[2].PublicKey != rent || metas[2].IsWritable || metas[2].IsSigner {
			t.Errorf("rent meta = %+v; want read-only non-signer %s", metas[2], rent)
		}
	})
}

func TestParseInstructionRejections(t *testing.T) {
	t.Run("too short", func(t *testing.T) {
		_, err := ParseInstruction([]byte{0, 0, 0})
		var tooShort PayloadTooShortError
		if !errors.As(err, &tooShort) {
			t.Fatalf("error = %v; want PayloadTooShortError", err)
		}
		if tooShort.Actual != 3 {
			t.Errorf("Actual = %d; want 3", tooShort.Actual)
		}
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, err := ParseInstruction([]byte{9, 9, 9, 9, 9, 9, 9, 9})
		var unknown UnknownDiscriminatorError
		if !errors.As(err, &unknown) {
			t.Fatalf("error = %v; want UnknownDiscriminatorError", err)
		}
		if unknown.Discriminator != [8]byte{9, 9, 9, 9, 9, 9, 9, 9} {
			t.Errorf("Discriminator = %x; want 0909090909090909", unknown.Discriminator)
		}
	})
}

func TestIncrementedEventRoundTrip(t *testing.T) {
	data, err := EncodeIncrementedEvent(&IncrementedEvent{Count: 3})
	if err != nil {
		t.Fatalf("EncodeIncrementedEvent() error = %v", err)
	}
	got, err := DecodeIncrementedEvent(data)
	if err != nil {
		t.Fatalf("DecodeIncrementedEvent() error = %v", err)
	}
	if got.Count != 3 {
		t.Errorf("Count = %d; want 3", got.Count)
	}
}

func TestDecodeAnyAccountDispatch(t *testing.T) {
	data, err := EncodeCounterAccount(&Counter{Count: 11, Authority: testAuthority})
	if err != nil {
		t.Fatalf("EncodeCounterAccount() error = %v", err)
	}

	decoded, err := DecodeAnyAccount(data)
	if err != nil {
		t.Fatalf("DecodeAnyAccount() error = %v", err)
	}
	counter, ok := decoded.(*Counter)
	if !ok {
		t.Fatalf("DecodeAnyAccount() = %T; want *Counter", decoded)
	}
	if counter.Count != 11 {
		t.Errorf("Count = %d; want 11", counter.Count)
	}

	_, err = DecodeAnyAccount([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	var unknown UnknownDiscriminatorError
	if !errors.As(err, &unknown) {
		t.Errorf("error = %v; want UnknownDiscriminatorError", err)
	}
}

func TestProgramErrorLookup(t *testing.T) {
	got, ok := ProgramErrorFromCode(6000)
	if !ok || got != ProgramErrorOverflow {
		t.Fatalf("ProgramErrorFromCode(6000) = %v, %v; want ProgramErrorOverflow, true", got, ok)
	}
	if msg := got.Error(); msg != "Overflow: counter overflowed" {
		t.Errorf("Error() = %q", msg)
	}
	if _, ok := ProgramErrorFromCode(1); ok {
		t.Error("ProgramErrorFromCode(1) = true; want false")
	}
}
