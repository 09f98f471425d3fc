package models

// Sample records are plain values with fixed-size arrays so that a copy into or
// out of a channel never shares memory with the producer.

const (
	ECGSamplesPerRecord  = 32
	BioZSamplesPerRecord = 4
	PPGSamplesPerRecord  = 16
)

// ECGBioZSample is one batch from the ECG/bioimpedance front end.
type ECGBioZSample struct {
	ECG         [ECGSamplesPerRecord]int16  `json:"ecg"`
	ECGCount    uint8                       `json:"ecg_count"`
	ECGLeadOff  bool                        `json:"ecg_lead_off"`
	BioZ        [BioZSamplesPerRecord]int32 `json:"bioz"`
	BioZCount   uint8                       `json:"bioz_count"`
	BioZLeadOff bool                        `json:"bioz_lead_off"`
}

// ECGSamples returns the valid part of the ECG array.
func (s *ECGBioZSample) ECGSamples() []int16 {
	n := int(s.ECGCount)
	if n > len(s.ECG) {
		n = len(s.ECG)
	}
	return s.ECG[:n]
}

// PPGWristSample is one batch from the wrist optical sensor hub.
type PPGWristSample struct {
	HR               uint16                     `json:"hr"`
	SpO2             uint8                      `json:"spo2"`
	SpO2State        uint8                      `json:"spo2_state"`
	SpO2ValidPercent uint8                      `json:"spo2_valid_percent"`
	PPG              [PPGSamplesPerRecord]int32 `json:"ppg"`
	PPGCount         uint8                      `json:"ppg_count"`
}

// PPGFingerSample is one batch from the finger clip sensor (SpO2 / BPT).
type PPGFingerSample struct {
	BPTProgress      uint8                      `json:"bpt_progress"`
	SpO2ValidPercent uint8                      `json:"spo2_valid_percent"`
	SpO2State        uint8                      `json:"spo2_state"`
	SpO2             uint8                      `json:"spo2"`
	HR               uint16                     `json:"hr"`
	PPG              [PPGSamplesPerRecord]int32 `json:"ppg"`
	PPGCount         uint8                      `json:"ppg_count"`
}

// BootMessage is a self-test line shown on the boot screen.
// Complete marks the end of the device self-test.
type BootMessage struct {
	Message    string `json:"message"`
	Status     bool   `json:"status"`
	ShowStatus bool   `json:"show_status"`
	Complete   bool   `json:"complete"`
}

// ProgressUpdate drives the progress screen.
type ProgressUpdate struct {
	Percent uint8  `json:"percent"`
	Message string `json:"message"`
	Done    bool   `json:"done"`
}
