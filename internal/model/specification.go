package model

// Specification holds the optional catalogue data of a press. None of the
// fields depend on each other; they are only counted for completeness.
type Specification struct {
	CapacityKN          *float64 `json:"capacity_kn"`
	CapacityTon         *float64 `json:"capacity_ton"`
	StrokeSPMMin        *float64 `gorm:"column:stroke_spm_min" json:"stroke_spm_min"`
	StrokeSPMMax        *float64 `gorm:"column:stroke_spm_max" json:"stroke_spm_max"`
	StrokeLengthMM      *float64 `json:"stroke_length_mm"`
	DieHeightMM         *float64 `json:"die_height_mm"`
	SlideAdjustMM       *float64 `json:"slide_adjust_mm"`
	SlideSizeLRMM       *float64 `gorm:"column:slide_size_lr_mm" json:"slide_size_lr_mm"`
	SlideSizeFBMM       *float64 `gorm:"column:slide_size_fb_mm" json:"slide_size_fb_mm"`
	BolsterSizeLRMM     *float64 `gorm:"column:bolster_size_lr_mm" json:"bolster_size_lr_mm"`
	BolsterSizeFBMM     *float64 `gorm:"column:bolster_size_fb_mm" json:"bolster_size_fb_mm"`
	BolsterThicknessMM  *float64 `json:"bolster_thickness_mm"`
	MaxUpperDieWeightKG *float64 `gorm:"column:max_upper_die_weight_kg" json:"max_upper_die_weight_kg"`
	MotorPowerKW        *float64 `gorm:"column:motor_power_kw" json:"motor_power_kw"`
	AirPressureMPa      *float64 `gorm:"column:air_pressure_mpa" json:"air_pressure_mpa"`
	MaxDownSpeedMMS     *float64 `gorm:"column:max_down_speed_mm_s" json:"max_down_speed_mm_s"`
	OverrunAngleMinDeg  *float64 `json:"overrun_angle_min_deg"`
	OverrunAngleMaxDeg  *float64 `json:"overrun_angle_max_deg"`
	StopTimeLightMS     *float64 `gorm:"column:stop_time_light_ms" json:"stop_time_light_ms"`
	StopTimeTwoHandMS   *float64 `gorm:"column:stop_time_twohand_ms" json:"stop_time_twohand_ms"`
	StopTimeEmergencyMS *float64 `gorm:"column:stop_time_emergency_ms" json:"stop_time_emergency_ms"`
	InertiaDropMM       *float64 `json:"inertia_drop_mm"`
	ManufactureYear     *int     `json:"manufacture_year"`
	ManufactureMonth    *int     `json:"manufacture_month"`
	PowerSpecText       *string  `gorm:"size:256" json:"power_spec_text"`
}

// Completeness returns how many specification fields are set out of the total.
func (s Specification) Completeness() (filled, total int) {
	floats := []*float64{
		s.CapacityKN, s.CapacityTon, s.StrokeSPMMin, s.StrokeSPMMax, s.StrokeLengthMM,
		s.DieHeightMM, s.SlideAdjustMM, s.SlideSizeLRMM, s.SlideSizeFBMM,
		s.BolsterSizeLRMM, s.BolsterSizeFBMM, s.BolsterThicknessMM, s.MaxUpperDieWeightKG,
		s.MotorPowerKW, s.AirPressureMPa, s.MaxDownSpeedMMS, s.OverrunAngleMinDeg,
		s.OverrunAngleMaxDeg, s.StopTimeLightMS, s.StopTimeTwoHandMS, s.StopTimeEmergencyMS,
		s.InertiaDropMM,
	}
	for _, f := range floats {
		if f != nil {
			filled++
		}
	}
	total = len(floats)

	for _, i := range []*int{s.ManufactureYear, s.ManufactureMonth} {
		if i != nil {
			filled++
		}
		total++
	}
	if s.PowerSpecText != nil && *s.PowerSpecText != "" {
		filled++
	}
	total++
	return filled, total
}
