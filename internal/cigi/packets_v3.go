package cigi

// CIGI 3 packet table. Offsets are payload-relative (wire offset minus
// the 2-byte header). Where 3.2 or 3.3 changed a packet's size or
// field layout the entry carries per-minor decoder variants; the frame
// walker selects them through the session's negotiated minor version.

func init() {
	register(3, packetIDIGControl, &Entry{
		Label:  "IG Control",
		Size:   v3IGControlSize,
		Size32: v3IGControlSize32,
		dec: layout{size: 14, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Database Number", Off: 1, Len: 1, Kind: KindInt},
			{Label: "IG Mode", Off: 2, Len: 1, Kind: KindEnum, Enum: igModeNames, Mask: 0x03},
			{Label: "Timestamp Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: timeOfDayValidNames, Mask: 0x04, Shift: 2},
			{Label: "Byte Swap Magic", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Host Frame Number", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 10, Len: 4, Kind: KindUint},
		}},
		dec32: layout{size: 22, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Database Number", Off: 1, Len: 1, Kind: KindInt},
			{Label: "IG Mode", Off: 2, Len: 1, Kind: KindEnum, Enum: igModeNames, Mask: 0x03},
			{Label: "Timestamp Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: timeOfDayValidNames, Mask: 0x04, Shift: 2},
			{Label: "Minor Version", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Byte Swap Magic", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Host Frame Number", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 10, Len: 4, Kind: KindUint},
			{Label: "Last IG Frame Number", Off: 14, Len: 4, Kind: KindUint},
		}},
		dec33: layout{size: 22, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Database Number", Off: 1, Len: 1, Kind: KindInt},
			{Label: "IG Mode", Off: 2, Len: 1, Kind: KindEnum, Enum: igModeNames, Mask: 0x03},
			{Label: "Timestamp Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: timeOfDayValidNames, Mask: 0x04, Shift: 2},
			{Label: "Extrapolation Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Minor Version", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Byte Swap Magic", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Host Frame Number", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 10, Len: 4, Kind: KindUint},
			{Label: "Last IG Frame Number", Off: 14, Len: 4, Kind: KindUint},
		}},
	})

	register(3, 2, &Entry{
		Label: "Entity Control",
		Size:  48,
		dec: layout{size: 46, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Entity State", Off: 2, Len: 1, Kind: KindEnum, Enum: entityStateNames, Mask: 0x03},
			{Label: "Attach State", Off: 2, Len: 1, Kind: KindEnum, Enum: attachStateNames, Mask: 0x04, Shift: 2},
			{Label: "Collision Detection", Off: 2, Len: 1, Kind: KindEnum, Enum: collisionDetectionNames, Mask: 0x08, Shift: 3},
			{Label: "Inherit Alpha", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Inherited", False: "Not Inherited"},
			{Label: "Ground/Ocean Clamp", Off: 2, Len: 1, Kind: KindEnum, Enum: groundClampNames, Mask: 0x60, Shift: 5},
			{Label: "Animation Direction", Off: 3, Len: 1, Kind: KindEnum, Enum: animationDirectionNames, Mask: 0x01},
			{Label: "Animation Loop Mode", Off: 3, Len: 1, Kind: KindEnum, Enum: animationLoopNames, Mask: 0x02, Shift: 1},
			{Label: "Animation State", Off: 3, Len: 1, Kind: KindEnum, Enum: animationStateNames, Mask: 0x0C, Shift: 2},
			{Label: "Extrapolation Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Alpha", Off: 4, Len: 1, Kind: KindUint},
			{Label: "Entity Type", Off: 6, Len: 2, Kind: KindUint},
			{Label: "Parent Entity ID", Off: 8, Len: 2, Kind: KindUint},
			{Label: "Roll", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Latitude", Off: 22, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 30, Len: 8, Kind: KindFloat},
			{Label: "Altitude", Off: 38, Len: 8, Kind: KindFloat},
		}},
	})

	register(3, 3, &Entry{
		Label: "Conformal Clamped Entity Control",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Yaw", Off: 2, Len: 4, Kind: KindFloat},
			{Label: "Latitude", Off: 6, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 14, Len: 8, Kind: KindFloat},
		}},
	})

	register(3, 4, &Entry{
		Label: "Component Control",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Component ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Instance ID", Off: 2, Len: 2, Kind: KindUint},
			{Label: "Component Class", Off: 4, Len: 1, Kind: KindEnum, Enum: componentClassNames, Mask: 0x3F},
			{Label: "Component State", Off: 5, Len: 1, Kind: KindUint},
			{Label: "Component Data 1", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Component Data 2", Off: 10, Len: 4, Kind: KindUint},
			{Label: "Component Data 3", Off: 14, Len: 4, Kind: KindUint},
			{Label: "Component Data 4", Off: 18, Len: 4, Kind: KindUint},
			{Label: "Component Data 5", Off: 22, Len: 4, Kind: KindUint},
			{Label: "Component Data 6", Off: 26, Len: 4, Kind: KindUint},
		}},
	})

	register(3, 5, &Entry{
		Label: "Short Component Control",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "Component ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Instance ID", Off: 2, Len: 2, Kind: KindUint},
			{Label: "Component Class", Off: 4, Len: 1, Kind: KindEnum, Enum: componentClassNames, Mask: 0x3F},
			{Label: "Component State", Off: 5, Len: 1, Kind: KindUint},
			{Label: "Component Data 1", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Component Data 2", Off: 10, Len: 4, Kind: KindUint},
		}},
	})

	register(3, 6, &Entry{
		Label: "Articulated Part Control",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Part Enable", Off: 3, Len: 1, Kind: KindEnum, Enum: articulatedPartEnableNames, Mask: 0x01},
			{Label: "X Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Enabled", False: "Disabled"},
			{Label: "Y Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Z Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Roll Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Pitch Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Yaw Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x40, Shift: 6, True: "Enabled", False: "Disabled"},
			{Label: "X Offset", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y Offset", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z Offset", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 26, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 7, &Entry{
		Label: "Short Articulated Part Control",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID 1", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Part ID 2", Off: 3, Len: 1, Kind: KindUint},
			{Label: "DOF 1 Select", Off: 4, Len: 1, Kind: KindUint, Mask: 0x07},
			{Label: "DOF 2 Select", Off: 4, Len: 1, Kind: KindUint, Mask: 0x38, Shift: 3},
			{Label: "Part 1 Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x40, Shift: 6, True: "Enabled", False: "Disabled"},
			{Label: "Part 2 Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Enabled", False: "Disabled"},
			{Label: "DOF 1", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "DOF 2", Off: 10, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 8, &Entry{
		Label: "Rate Control",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Apply to Part", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Part", False: "Entity"},
			{Label: "X Rate", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y Rate", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z Rate", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Roll Rate", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Pitch Rate", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Yaw Rate", Off: 26, Len: 4, Kind: KindFloat},
		}},
		dec32: layout{size: 30, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Apply to Part", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Part", False: "Entity"},
			{Label: "Coordinate System", Off: 3, Len: 1, Kind: KindEnum, Enum: coordinateSystemNames, Mask: 0x02, Shift: 1},
			{Label: "X Rate", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y Rate", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z Rate", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Roll Rate", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Pitch Rate", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Yaw Rate", Off: 26, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 9, &Entry{
		Label: "Celestial Sphere Control",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "Hour", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Minute", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Ephemeris Model Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Sun Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Enabled", False: "Disabled"},
			{Label: "Moon Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Star Field Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Date/Time Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: timeOfDayValidNames, Mask: 0x10, Shift: 4},
			{Label: "Date", Off: 4, Len: 4, Kind: KindUint},
			{Label: "Star Field Intensity", Off: 8, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 10, &Entry{
		Label: "Atmosphere Control",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Atmospheric Model Enable", Off: 0, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Humidity", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Air Temperature", Off: 2, Len: 4, Kind: KindFloat},
			{Label: "Visibility Range", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Horizontal Wind Speed", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Vertical Wind Speed", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Wind Direction", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Barometric Pressure", Off: 22, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 11, &Entry{
		Label: "Environmental Region Control",
		Size:  48,
		dec: layout{size: 46, fields: []field{
			{Label: "Region ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Region State", Off: 2, Len: 1, Kind: KindEnum, Enum: regionStateNames, Mask: 0x03},
			{Label: "Merge Weather Properties", Off: 2, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Merge", False: "Use Last"},
			{Label: "Merge Aerosol Concentrations", Off: 2, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Merge", False: "Use Last"},
			{Label: "Merge Maritime Surface Conditions", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Merge", False: "Use Last"},
			{Label: "Merge Terrestrial Surface Conditions", Off: 2, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Merge", False: "Use Last"},
			{Label: "Latitude", Off: 4, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 12, Len: 8, Kind: KindFloat},
			{Label: "Size X", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Size Y", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Corner Radius", Off: 28, Len: 4, Kind: KindFloat},
			{Label: "Rotation", Off: 32, Len: 4, Kind: KindFloat},
			{Label: "Transition Perimeter", Off: 36, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 12, &Entry{
		Label: "Weather Control",
		Size:  56,
		dec: layout{size: 54, fields: []field{
			{Label: "Entity/Region ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Weather Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Scud Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Enabled", False: "Disabled"},
			{Label: "Random Winds Aloft", Off: 2, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Random Lightning", Off: 2, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Cloud Type", Off: 2, Len: 1, Kind: KindEnum, Enum: cloudTypeNames, Mask: 0xF0, Shift: 4},
			{Label: "Scope", Off: 3, Len: 1, Kind: KindEnum, Enum: weatherScopeNames, Mask: 0x03},
			{Label: "Severity", Off: 3, Len: 1, Kind: KindEnum, Enum: severityNames, Mask: 0x1C, Shift: 2},
			{Label: "Air Temperature", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Opacity", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Scud Frequency", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Coverage", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Base Elevation", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Thickness", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Transition Band", Off: 28, Len: 4, Kind: KindFloat},
			{Label: "Horizontal Wind Speed", Off: 32, Len: 4, Kind: KindFloat},
			{Label: "Vertical Wind Speed", Off: 36, Len: 4, Kind: KindFloat},
			{Label: "Wind Direction", Off: 40, Len: 4, Kind: KindFloat},
			{Label: "Barometric Pressure", Off: 44, Len: 4, Kind: KindFloat},
			{Label: "Aerosol Concentration", Off: 48, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 13, &Entry{
		Label: "Maritime Surface Conditions Control",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "Entity/Region ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Surface Conditions Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Whitecap Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Enabled", False: "Disabled"},
			{Label: "Scope", Off: 2, Len: 1, Kind: KindEnum, Enum: weatherScopeNames, Mask: 0x0C, Shift: 2},
			{Label: "Sea Surface Height", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Surface Water Temperature", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Surface Clarity", Off: 12, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 14, &Entry{
		Label: "Wave Control",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Entity/Region ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Wave ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Wave Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Scope", Off: 3, Len: 1, Kind: KindEnum, Enum: weatherScopeNames, Mask: 0x06, Shift: 1},
			{Label: "Breaker Type", Off: 3, Len: 1, Kind: KindEnum, Enum: waveBreakerTypeNames, Mask: 0x18, Shift: 3},
			{Label: "Wave Height", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Wavelength", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Period", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Direction", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Phase Offset", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Leading Edge Position", Off: 24, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 15, &Entry{
		Label: "Terrestrial Surface Conditions Control",
		Size:  8,
		dec: layout{size: 6, fields: []field{
			{Label: "Entity/Region ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Surface Condition ID", Off: 2, Len: 2, Kind: KindUint},
			{Label: "Surface Condition Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Scope", Off: 4, Len: 1, Kind: KindEnum, Enum: weatherScopeNames, Mask: 0x06, Shift: 1},
			{Label: "Severity", Off: 5, Len: 1, Kind: KindUint},
		}},
	})

	register(3, 16, &Entry{
		Label: "View Control",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "View ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "View Group", Off: 2, Len: 1, Kind: KindUint},
			{Label: "X Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Y Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Enabled", False: "Disabled"},
			{Label: "Z Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Roll Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Pitch Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Yaw Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "X Offset", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y Offset", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z Offset", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 26, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 17, &Entry{
		Label: "Sensor Control",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "View ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Sensor ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Sensor On/Off", Off: 3, Len: 1, Kind: KindEnum, Enum: sensorOnOffNames, Mask: 0x01},
			{Label: "Polarity", Off: 3, Len: 1, Kind: KindEnum, Enum: polarityNames, Mask: 0x02, Shift: 1},
			{Label: "Line-by-Line Dropout", Off: 3, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Automatic Gain", Off: 3, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Track White/Black", Off: 3, Len: 1, Kind: KindEnum, Enum: trackPolarityNames, Mask: 0x10, Shift: 4},
			{Label: "Track Mode", Off: 3, Len: 1, Kind: KindEnum, Enum: trackModeNames, Mask: 0xE0, Shift: 5},
			{Label: "Response Type", Off: 4, Len: 1, Kind: KindEnum, Enum: responseTypeNames, Mask: 0x01},
			{Label: "Gain", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Level", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "AC Coupling", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Noise", Off: 18, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 18, &Entry{
		Label: "Motion Tracker Control",
		Size:  8,
		dec: layout{size: 6, fields: []field{
			{Label: "View/Group ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Tracker ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Tracker Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Boresight Enable", Off: 3, Len: 1, Kind: KindEnum, Enum: boresightNames, Mask: 0x02, Shift: 1},
			{Label: "X Reporting Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Y Reporting Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Z Reporting Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Roll Reporting Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Pitch Reporting Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x40, Shift: 6, True: "Enabled", False: "Disabled"},
			{Label: "Yaw Reporting Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Enabled", False: "Disabled"},
			{Label: "View/Group Select", Off: 4, Len: 1, Kind: KindBool, Mask: 0x01, True: "View Group", False: "View"},
		}},
	})

	register(3, 19, &Entry{
		Label: "Earth Reference Model Definition",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "Custom ERM Enable", Off: 0, Len: 1, Kind: KindEnum, Enum: earthModelNames, Mask: 0x01},
			{Label: "Equatorial Radius", Off: 4, Len: 8, Kind: KindFloat},
			{Label: "Flattening", Off: 12, Len: 8, Kind: KindFloat},
		}},
	})

	register(3, 20, &Entry{
		Label: "Trajectory Definition",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Acceleration X", Off: 2, Len: 4, Kind: KindFloat},
			{Label: "Acceleration Y", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Acceleration Z", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Retardation Rate", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Terminal Velocity", Off: 18, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 21, &Entry{
		Label: "View Definition",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "View ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "View Group", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Near Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Valid", False: "Not Valid"},
			{Label: "Far Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Valid", False: "Not Valid"},
			{Label: "Left Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Valid", False: "Not Valid"},
			{Label: "Right Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Valid", False: "Not Valid"},
			{Label: "Top Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Valid", False: "Not Valid"},
			{Label: "Bottom Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Valid", False: "Not Valid"},
			{Label: "Mirror Mode", Off: 3, Len: 1, Kind: KindEnum, Enum: mirrorModeNames, Mask: 0xC0, Shift: 6},
			{Label: "Pixel Replication", Off: 4, Len: 1, Kind: KindEnum, Enum: pixelReplicationNames, Mask: 0x07},
			{Label: "Projection Type", Off: 4, Len: 1, Kind: KindEnum, Enum: projectionTypeNames, Mask: 0x08, Shift: 3},
			{Label: "Reorder", Off: 4, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Bring to Top", False: "No Reorder"},
			{Label: "View Type", Off: 4, Len: 1, Kind: KindUint, Mask: 0xE0, Shift: 5},
			{Label: "Near Clipping Plane", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Far Clipping Plane", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Field of View Left", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Field of View Right", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Field of View Top", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Field of View Bottom", Off: 26, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 22, &Entry{
		Label: "Collision Detection Segment Definition",
		Size:  40,
		dec: layout{size: 38, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Segment ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Segment Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "X1", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y1", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z1", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "X2", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Y2", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Z2", Off: 26, Len: 4, Kind: KindFloat},
			{Label: "Material Mask", Off: 30, Len: 4, Kind: KindUint},
		}},
	})

	register(3, 23, &Entry{
		Label: "Collision Detection Volume Definition",
		Size:  48,
		dec: layout{size: 46, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Volume ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Volume Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Volume Type", Off: 3, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Cylinder", False: "Sphere"},
			{Label: "X Offset", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y Offset", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z Offset", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Radius/Height", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Width", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Depth", Off: 26, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 30, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 34, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 38, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 24, &Entry{
		Label: "HAT/HOT Request",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "HAT/HOT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Request Type", Off: 2, Len: 1, Kind: KindEnum, Enum: hatHotTypeNames, Mask: 0x03},
			{Label: "Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x04, Shift: 2},
			{Label: "Update Period", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Latitude/X Offset", Off: 6, Len: 8, Kind: KindFloat},
			{Label: "Longitude/Y Offset", Off: 14, Len: 8, Kind: KindFloat},
			{Label: "Altitude/Z Offset", Off: 22, Len: 8, Kind: KindFloat},
		}},
	})

	register(3, 25, &Entry{
		Label: "Line of Sight Segment Request",
		Size:  64,
		dec: layout{size: 62, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Request Type", Off: 2, Len: 1, Kind: KindEnum, Enum: responseTypeNames, Mask: 0x01},
			{Label: "Source Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x02, Shift: 1},
			{Label: "Destination Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x04, Shift: 2},
			{Label: "Response Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x08, Shift: 3},
			{Label: "Destination Entity Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x10, Shift: 4},
			{Label: "Alpha Threshold", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Source Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Source Latitude/X", Off: 6, Len: 8, Kind: KindFloat},
			{Label: "Source Longitude/Y", Off: 14, Len: 8, Kind: KindFloat},
			{Label: "Source Altitude/Z", Off: 22, Len: 8, Kind: KindFloat},
			{Label: "Destination Latitude/X", Off: 30, Len: 8, Kind: KindFloat},
			{Label: "Destination Longitude/Y", Off: 38, Len: 8, Kind: KindFloat},
			{Label: "Destination Altitude/Z", Off: 46, Len: 8, Kind: KindFloat},
			{Label: "Material Mask", Off: 54, Len: 4, Kind: KindUint},
			{Label: "Update Period", Off: 58, Len: 1, Kind: KindUint},
			{Label: "Destination Entity ID", Off: 60, Len: 2, Kind: KindUint},
		}},
	})

	register(3, 26, &Entry{
		Label: "Line of Sight Vector Request",
		Size:  56,
		dec: layout{size: 54, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Request Type", Off: 2, Len: 1, Kind: KindEnum, Enum: responseTypeNames, Mask: 0x01},
			{Label: "Source Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x02, Shift: 1},
			{Label: "Response Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x04, Shift: 2},
			{Label: "Alpha Threshold", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Source Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Azimuth", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Elevation", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Minimum Range", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Maximum Range", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Source Latitude/X", Off: 22, Len: 8, Kind: KindFloat},
			{Label: "Source Longitude/Y", Off: 30, Len: 8, Kind: KindFloat},
			{Label: "Source Altitude/Z", Off: 38, Len: 8, Kind: KindFloat},
			{Label: "Material Mask", Off: 46, Len: 4, Kind: KindUint},
			{Label: "Update Period", Off: 50, Len: 1, Kind: KindUint},
		}},
	})

	register(3, 27, &Entry{
		Label: "Position Request",
		Size:  8,
		dec: layout{size: 6, fields: []field{
			{Label: "Object ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Update Mode", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Continuous", False: "One-Shot"},
			{Label: "Object Class", Off: 3, Len: 1, Kind: KindUint, Mask: 0x0E, Shift: 1},
			{Label: "Coordinate System", Off: 3, Len: 1, Kind: KindUint, Mask: 0x30, Shift: 4},
		}},
	})

	register(3, 28, &Entry{
		Label: "Environmental Conditions Request",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Request Type", Off: 0, Len: 1, Kind: KindUint, Mask: 0x0F},
			{Label: "Request ID", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Latitude", Off: 4, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 12, Len: 8, Kind: KindFloat},
			{Label: "Altitude", Off: 20, Len: 8, Kind: KindFloat},
		}},
	})

	register(3, 29, &Entry{
		Label: "Symbol Surface Definition",
		Size:  56,
		dec: layout{size: 54, fields: []field{
			{Label: "Surface ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Surface State", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolSurfaceStateNames, Mask: 0x01},
			{Label: "Attach Type", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolAttachNames, Mask: 0x02, Shift: 1},
			{Label: "Billboard", Off: 2, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Billboard", False: "Non-Billboard"},
			{Label: "Perspective Growth Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Entity/View ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "X Offset/Left Edge", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y Offset/Right Edge", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z Offset/Top Edge", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Yaw/Bottom Edge", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 26, Len: 4, Kind: KindFloat},
			{Label: "Width", Off: 30, Len: 4, Kind: KindFloat},
			{Label: "Height", Off: 34, Len: 4, Kind: KindFloat},
			{Label: "Minimum U", Off: 38, Len: 4, Kind: KindFloat},
			{Label: "Maximum U", Off: 42, Len: 4, Kind: KindFloat},
			{Label: "Minimum V", Off: 46, Len: 4, Kind: KindFloat},
			{Label: "Maximum V", Off: 50, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 30, &Entry{
		Label:    "Symbol Text Definition",
		Variable: true,
		Size:     16,
		dec: textDecoder{
			prefix: layout{size: 10, fields: []field{
				{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
				{Label: "Alignment", Off: 2, Len: 1, Kind: KindEnum, Enum: textAlignmentNames, Mask: 0x0F},
				{Label: "Orientation", Off: 2, Len: 1, Kind: KindEnum, Enum: textOrientationNames, Mask: 0x30, Shift: 4},
				{Label: "Font ID", Off: 3, Len: 1, Kind: KindEnum, Enum: fontNames},
				{Label: "Font Size", Off: 6, Len: 4, Kind: KindFloat},
			}},
			textLabel: "Text",
		},
	})

	register(3, 31, &Entry{
		Label:    "Symbol Circle Definition",
		Variable: true,
		Size:     16,
		dec: recordDecoder{
			prefix: layout{size: 14, fields: []field{
				{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
				{Label: "Drawing Style", Off: 2, Len: 1, Kind: KindEnum, Enum: drawingStyleNames, Mask: 0x01},
				{Label: "Stipple Pattern", Off: 4, Len: 2, Kind: KindUint},
				{Label: "Line Width", Off: 6, Len: 4, Kind: KindFloat},
				{Label: "Stipple Pattern Length", Off: 10, Len: 4, Kind: KindFloat},
			}},
			recordLabel: "Circle",
			recordSize:  24,
			record: []field{
				{Label: "Center U", Off: 0, Len: 4, Kind: KindFloat},
				{Label: "Center V", Off: 4, Len: 4, Kind: KindFloat},
				{Label: "Radius", Off: 8, Len: 4, Kind: KindFloat},
				{Label: "Inner Radius", Off: 12, Len: 4, Kind: KindFloat},
				{Label: "Start Angle", Off: 16, Len: 4, Kind: KindFloat},
				{Label: "End Angle", Off: 20, Len: 4, Kind: KindFloat},
			},
			maxRecords: 9,
		},
	})

	register(3, 32, &Entry{
		Label:    "Symbol Line Definition",
		Variable: true,
		Size:     16,
		dec: recordDecoder{
			prefix: layout{size: 14, fields: []field{
				{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
				{Label: "Primitive Type", Off: 2, Len: 1, Kind: KindEnum, Enum: lineStyleNames, Mask: 0x0F},
				{Label: "Stipple Pattern", Off: 4, Len: 2, Kind: KindUint},
				{Label: "Line Width", Off: 6, Len: 4, Kind: KindFloat},
				{Label: "Stipple Pattern Length", Off: 10, Len: 4, Kind: KindFloat},
			}},
			recordLabel: "Vertex",
			recordSize:  8,
			record: []field{
				{Label: "Vertex U", Off: 0, Len: 4, Kind: KindFloat},
				{Label: "Vertex V", Off: 4, Len: 4, Kind: KindFloat},
			},
			maxRecords: 29,
		},
	})

	register(3, 33, &Entry{
		Label: "Symbol Clone",
		Size:  8,
		dec: layout{size: 6, fields: []field{
			{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Source Type", Off: 2, Len: 1, Kind: KindEnum, Enum: cloneSourceNames, Mask: 0x01},
			{Label: "Source ID", Off: 4, Len: 2, Kind: KindUint},
		}},
	})

	register(3, 34, &Entry{
		Label: "Symbol Control",
		Size:  40,
		dec: layout{size: 38, fields: []field{
			{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Symbol State", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolStateNames, Mask: 0x03},
			{Label: "Attach State", Off: 2, Len: 1, Kind: KindEnum, Enum: attachStateNames, Mask: 0x04, Shift: 2},
			{Label: "Flash Control", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolFlashControlNames, Mask: 0x08, Shift: 3},
			{Label: "Inherit Color", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Inherited", False: "Not Inherited"},
			{Label: "Parent Symbol ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Surface ID", Off: 6, Len: 2, Kind: KindUint},
			{Label: "Layer", Off: 8, Len: 1, Kind: KindUint},
			{Label: "Flash Duty Cycle", Off: 9, Len: 1, Kind: KindUint},
			{Label: "Flash Period", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Position U", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Position V", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Rotation", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Red", Off: 26, Len: 1, Kind: KindUint},
			{Label: "Green", Off: 27, Len: 1, Kind: KindUint},
			{Label: "Blue", Off: 28, Len: 1, Kind: KindUint},
			{Label: "Alpha", Off: 29, Len: 1, Kind: KindUint},
			{Label: "Scale U", Off: 30, Len: 4, Kind: KindFloat},
			{Label: "Scale V", Off: 34, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 35, &Entry{
		Label: "Short Symbol Control",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Symbol State", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolStateNames, Mask: 0x03},
			{Label: "Attach State", Off: 2, Len: 1, Kind: KindEnum, Enum: attachStateNames, Mask: 0x04, Shift: 2},
			{Label: "Flash Control", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolFlashControlNames, Mask: 0x08, Shift: 3},
			{Label: "Inherit Color", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Inherited", False: "Not Inherited"},
			{Label: "Attribute 1 Select", Off: 4, Len: 1, Kind: KindUint},
			{Label: "Attribute 2 Select", Off: 5, Len: 1, Kind: KindUint},
			{Label: "Attribute 1 Value", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Attribute 2 Value", Off: 10, Len: 4, Kind: KindUint},
		}},
	})

	register(3, packetIDStartOfFrame, &Entry{
		Label:  "Start of Frame",
		Size:   v3StartOfFrameSize,
		Size32: v3StartOfFrameSize32,
		dec: layout{size: 14, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Database Number", Off: 1, Len: 1, Kind: KindInt},
			{Label: "IG Status Code", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Earth Reference Model", Off: 3, Len: 1, Kind: KindEnum, Enum: earthModelNames, Mask: 0x01},
			{Label: "Timestamp Valid", Off: 3, Len: 1, Kind: KindEnum, Enum: timeOfDayValidNames, Mask: 0x02, Shift: 1},
			{Label: "Byte Swap Magic", Off: 4, Len: 2, Kind: KindUint},
			{Label: "IG Frame Number", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 10, Len: 4, Kind: KindUint},
		}},
		dec32: layout{size: 22, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Database Number", Off: 1, Len: 1, Kind: KindInt},
			{Label: "IG Status Code", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Earth Reference Model", Off: 3, Len: 1, Kind: KindEnum, Enum: earthModelNames, Mask: 0x01},
			{Label: "Timestamp Valid", Off: 3, Len: 1, Kind: KindEnum, Enum: timeOfDayValidNames, Mask: 0x02, Shift: 1},
			{Label: "Minor Version", Off: 3, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Byte Swap Magic", Off: 4, Len: 2, Kind: KindUint},
			{Label: "IG Frame Number", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 10, Len: 4, Kind: KindUint},
			{Label: "Last Host Frame Number", Off: 14, Len: 4, Kind: KindUint},
		}},
	})

	register(3, 102, &Entry{
		Label: "HAT/HOT Response",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "HAT/HOT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x01},
			{Label: "Response Type", Off: 2, Len: 1, Kind: KindEnum, Enum: hatHotTypeNames, Mask: 0x02, Shift: 1},
			{Label: "Host Frame Number LSN", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Height", Off: 6, Len: 8, Kind: KindFloat},
		}},
	})

	register(3, 103, &Entry{
		Label: "HAT/HOT Extended Response",
		Size:  40,
		dec: layout{size: 38, fields: []field{
			{Label: "HAT/HOT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x01},
			{Label: "Host Frame Number LSN", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Height Above Terrain", Off: 6, Len: 8, Kind: KindFloat},
			{Label: "Height of Terrain", Off: 14, Len: 8, Kind: KindFloat},
			{Label: "Material Code", Off: 22, Len: 4, Kind: KindUint},
			{Label: "Normal Vector Azimuth", Off: 26, Len: 4, Kind: KindFloat},
			{Label: "Normal Vector Elevation", Off: 30, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 104, &Entry{
		Label: "Line of Sight Response",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x01},
			{Label: "Entity ID Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x02, Shift: 1},
			{Label: "Visible", Off: 2, Len: 1, Kind: KindEnum, Enum: visibilityNames, Mask: 0x04, Shift: 2},
			{Label: "Host Frame Number LSN", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Response Count", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Range", Off: 6, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 105, &Entry{
		Label: "Line of Sight Extended Response",
		Size:  56,
		dec: layout{size: 54, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x01},
			{Label: "Entity ID Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x02, Shift: 1},
			{Label: "Range Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x04, Shift: 2},
			{Label: "Visible", Off: 2, Len: 1, Kind: KindEnum, Enum: visibilityNames, Mask: 0x08, Shift: 3},
			{Label: "Host Frame Number LSN", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Response Count", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Range", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Latitude/X", Off: 10, Len: 8, Kind: KindFloat},
			{Label: "Longitude/Y", Off: 18, Len: 8, Kind: KindFloat},
			{Label: "Altitude/Z", Off: 26, Len: 8, Kind: KindFloat},
			{Label: "Red", Off: 34, Len: 1, Kind: KindUint},
			{Label: "Green", Off: 35, Len: 1, Kind: KindUint},
			{Label: "Blue", Off: 36, Len: 1, Kind: KindUint},
			{Label: "Alpha", Off: 37, Len: 1, Kind: KindUint},
			{Label: "Material Code", Off: 38, Len: 4, Kind: KindUint},
			{Label: "Normal Vector Azimuth", Off: 42, Len: 4, Kind: KindFloat},
			{Label: "Normal Vector Elevation", Off: 46, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 106, &Entry{
		Label: "Sensor Response",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "View ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Sensor ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Sensor Status", Off: 3, Len: 1, Kind: KindUint, Mask: 0x03},
			{Label: "Gate X Size", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Gate Y Size", Off: 6, Len: 2, Kind: KindUint},
			{Label: "Gate X Position", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Gate Y Position", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Host Frame Number", Off: 16, Len: 4, Kind: KindUint},
		}},
	})

	register(3, 107, &Entry{
		Label: "Sensor Extended Response",
		Size:  48,
		dec: layout{size: 46, fields: []field{
			{Label: "View ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Sensor ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Sensor Status", Off: 3, Len: 1, Kind: KindUint, Mask: 0x03},
			{Label: "Entity ID Valid", Off: 3, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x04, Shift: 2},
			{Label: "Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Gate X Size", Off: 6, Len: 2, Kind: KindUint},
			{Label: "Gate Y Size", Off: 8, Len: 2, Kind: KindUint},
			{Label: "Gate X Position", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Gate Y Position", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Host Frame Number", Off: 18, Len: 4, Kind: KindUint},
			{Label: "Track Point Latitude", Off: 22, Len: 8, Kind: KindFloat},
			{Label: "Track Point Longitude", Off: 30, Len: 8, Kind: KindFloat},
			{Label: "Track Point Altitude", Off: 38, Len: 8, Kind: KindFloat},
		}},
	})

	register(3, 108, &Entry{
		Label: "Position Response",
		Size:  48,
		dec: layout{size: 46, fields: []field{
			{Label: "Object ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Object Class", Off: 3, Len: 1, Kind: KindUint, Mask: 0x07},
			{Label: "Coordinate System", Off: 3, Len: 1, Kind: KindUint, Mask: 0x18, Shift: 3},
			{Label: "Latitude/X", Off: 6, Len: 8, Kind: KindFloat},
			{Label: "Longitude/Y", Off: 14, Len: 8, Kind: KindFloat},
			{Label: "Altitude/Z", Off: 22, Len: 8, Kind: KindFloat},
			{Label: "Roll", Off: 30, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 34, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 38, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 109, &Entry{
		Label: "Weather Conditions Response",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Request ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Humidity", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Air Temperature", Off: 2, Len: 4, Kind: KindFloat},
			{Label: "Visibility Range", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Horizontal Wind Speed", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Vertical Wind Speed", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Wind Direction", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Barometric Pressure", Off: 22, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 110, &Entry{
		Label: "Aerosol Concentration Response",
		Size:  8,
		dec: layout{size: 6, fields: []field{
			{Label: "Request ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Layer ID", Off: 1, Len: 1, Kind: KindEnum, Enum: weatherLayerNames},
			{Label: "Aerosol Concentration", Off: 2, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 111, &Entry{
		Label: "Maritime Surface Conditions Response",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Request ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Sea Surface Height", Off: 2, Len: 4, Kind: KindFloat},
			{Label: "Surface Water Temperature", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Surface Clarity", Off: 10, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 112, &Entry{
		Label: "Terrestrial Surface Conditions Response",
		Size:  8,
		dec: layout{size: 6, fields: []field{
			{Label: "Request ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Surface Condition ID", Off: 2, Len: 4, Kind: KindUint},
		}},
	})

	register(3, 113, &Entry{
		Label: "Collision Detection Segment Notification",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Segment ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Contact Type", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Entity", False: "Non-Entity"},
			{Label: "Contacted Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Material Code", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Intersection Distance", Off: 10, Len: 4, Kind: KindFloat},
		}},
	})

	register(3, 114, &Entry{
		Label: "Collision Detection Volume Notification",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Volume ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Contact Type", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Entity", False: "Non-Entity"},
			{Label: "Contacted Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Contacted Volume ID", Off: 6, Len: 1, Kind: KindUint},
		}},
	})

	register(3, 115, &Entry{
		Label: "Animation Stop Notification",
		Size:  8,
		dec: layout{size: 6, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
		}},
	})

	register(3, 116, &Entry{
		Label: "Event Notification",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "Event ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Event Data 1", Off: 2, Len: 4, Kind: KindUint},
			{Label: "Event Data 2", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Event Data 3", Off: 10, Len: 4, Kind: KindUint},
		}},
	})

	register(3, 117, &Entry{
		Label:    "Image Generator Message",
		Variable: true,
		Size:     8,
		dec: textDecoder{
			prefix: layout{size: 2, fields: []field{
				{Label: "Message ID", Off: 0, Len: 2, Kind: KindUint},
			}},
			textLabel: "Message",
		},
	})
}
