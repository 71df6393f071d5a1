package sensor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Frame layout: a 12-byte header of [type tag (4 bytes, NUL padded)]
// [unix timestamp (uint32)] [payload length (uint32)], little-endian,
// followed by the payload.
const headerSize = 12

// Type tags fit the 4-byte header field; longer names are abbreviated.
var tagToType = map[string]DataType{
	"hr":   TypeHeartRate,
	"temp": TypeTemperature,
	"act":  TypeActivity,
	"loc":  TypeLocation,
	"batt": TypeBattery,
}

// timestampSlack tolerates clock skew between collar and server.
const timestampSlack = time.Hour

// Validate checks frame integrity without decoding the payload.
func Validate(raw []byte) error {
	if len(raw) < headerSize {
		return ErrFrameTooShort
	}
	tag, ts, length := parseHeader(raw)
	if _, ok := tagToType[tag]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDataType, tag)
	}
	if len(raw) != headerSize+int(length) {
		return ErrLengthMismatch
	}
	if time.Unix(int64(ts), 0).After(time.Now().Add(timestampSlack)) {
		return ErrBadTimestamp
	}
	return nil
}

// DecodeFrame parses one binary collar frame into a typed reading.
func DecodeFrame(deviceID string, raw []byte) (*Reading, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	tag, ts, length := parseHeader(raw)
	payload := raw[headerSize : headerSize+int(length)]

	r := &Reading{
		DeviceID:   deviceID,
		Type:       tagToType[tag],
		Timestamp:  time.Unix(int64(ts), 0).UTC(),
		Confidence: 1.0,
	}

	var err error
	switch r.Type {
	case TypeHeartRate:
		err = r.decodeHeartRate(payload)
	case TypeTemperature:
		err = r.decodeTemperature(payload)
	case TypeActivity:
		err = r.decodeActivity(payload)
	case TypeLocation:
		err = r.decodeLocation(payload)
	case TypeBattery:
		err = r.decodeBattery(payload)
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func parseHeader(raw []byte) (tag string, ts uint32, length uint32) {
	tag = string(bytes.TrimRight(raw[0:4], "\x00"))
	ts = binary.LittleEndian.Uint32(raw[4:8])
	length = binary.LittleEndian.Uint32(raw[8:12])
	return tag, ts, length
}

// Payload: [rate uint16] [confidence byte, percent] [battery byte].
func (r *Reading) decodeHeartRate(payload []byte) error {
	if len(payload) < 4 {
		return ErrPayloadTooShort
	}
	r.HeartRate = float64(binary.LittleEndian.Uint16(payload[0:2]))
	r.Confidence = float64(payload[2]) / 100.0
	r.BatteryLevel = int(payload[3])
	return nil
}

// Payload: [temperature uint16, hundredths of a degree] [confidence byte]
// [battery byte].
func (r *Reading) decodeTemperature(payload []byte) error {
	if len(payload) < 4 {
		return ErrPayloadTooShort
	}
	r.Temperature = float64(binary.LittleEndian.Uint16(payload[0:2])) / 100.0
	r.Confidence = float64(payload[2]) / 100.0
	r.BatteryLevel = int(payload[3])
	return nil
}

// Payload: [activity uint16, hundredths] [steps uint32] [confidence byte]
// [battery byte].
func (r *Reading) decodeActivity(payload []byte) error {
	if len(payload) < 8 {
		return ErrPayloadTooShort
	}
	r.ActivityLevel = float64(binary.LittleEndian.Uint16(payload[0:2])) / 100.0
	r.Steps = int(binary.LittleEndian.Uint32(payload[2:6]))
	r.Confidence = float64(payload[6]) / 100.0
	r.BatteryLevel = int(payload[7])
	return nil
}

// Payload: [latitude float32] [longitude float32] [accuracy uint16]
// [battery byte].
func (r *Reading) decodeLocation(payload []byte) error {
	if len(payload) < 11 {
		return ErrPayloadTooShort
	}
	r.Latitude = float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[0:4])))
	r.Longitude = float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[4:8])))
	r.Accuracy = int(binary.LittleEndian.Uint16(payload[8:10]))
	r.BatteryLevel = int(payload[10])
	return nil
}

// Payload: [level byte] [charging byte] [temperature uint16, hundredths].
func (r *Reading) decodeBattery(payload []byte) error {
	if len(payload) < 4 {
		return ErrPayloadTooShort
	}
	r.BatteryLevel = int(payload[0])
	r.Charging = payload[1] != 0
	r.Temperature = float64(binary.LittleEndian.Uint16(payload[2:4])) / 100.0
	return nil
}
