package cigi

// CIGI 4 packet table. The header grew to 4 bytes ([size u16][id u16])
// so offsets here are wire offset minus 4, and every packet size is a
// multiple of 8. Host-to-IG ids count up from 0x0000; IG-to-Host ids
// count down from the Start of Frame at 0xFFFF. Ids absent from this
// table fall back to the defined/registered/locally-defined range
// labels in the registry.

func init() {
	register(4, v4PacketIDIGControl, &Entry{
		Label: "IG Control",
		Size:  v4IGControlSize,
		dec: layout{size: 20, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "IG Mode", Off: 1, Len: 1, Kind: KindEnum, Enum: v4IGModeNames, Mask: 0x03},
			{Label: "Timestamp Valid", Off: 1, Len: 1, Kind: KindEnum, Enum: timeOfDayValidNames, Mask: 0x04, Shift: 2},
			{Label: "Extrapolation Enable", Off: 1, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Database Number", Off: 2, Len: 1, Kind: KindInt},
			{Label: "Host Frame Number", Off: 4, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 8, Len: 4, Kind: KindUint},
			{Label: "Last IG Frame Number", Off: 12, Len: 4, Kind: KindUint},
		}},
	})

	register(4, 0x0001, &Entry{
		Label: "Entity Position",
		Size:  48,
		dec: layout{size: 44, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Attach State", Off: 2, Len: 1, Kind: KindEnum, Enum: attachStateNames, Mask: 0x01},
			{Label: "Ground/Ocean Clamp", Off: 2, Len: 1, Kind: KindEnum, Enum: groundClampNames, Mask: 0x06, Shift: 1},
			{Label: "Parent Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Roll", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Latitude", Off: 20, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 28, Len: 8, Kind: KindFloat},
			{Label: "Altitude", Off: 36, Len: 8, Kind: KindFloat},
		}},
	})

	register(4, 0x0002, &Entry{
		Label: "Conformal Clamped Entity Position",
		Size:  32,
		dec: layout{size: 28, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Yaw", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Latitude", Off: 8, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 16, Len: 8, Kind: KindFloat},
		}},
	})

	register(4, 0x0003, &Entry{
		Label: "Component Control",
		Size:  32,
		dec: layout{size: 28, fields: []field{
			{Label: "Component ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Instance ID", Off: 2, Len: 2, Kind: KindUint},
			{Label: "Component Class", Off: 4, Len: 1, Kind: KindEnum, Enum: componentClassNames, Mask: 0x3F},
			{Label: "Component State", Off: 5, Len: 1, Kind: KindUint},
			{Label: "Component Data 1", Off: 8, Len: 4, Kind: KindUint},
			{Label: "Component Data 2", Off: 12, Len: 4, Kind: KindUint},
			{Label: "Component Data 3", Off: 16, Len: 4, Kind: KindUint},
			{Label: "Component Data 4", Off: 20, Len: 4, Kind: KindUint},
			{Label: "Component Data 5", Off: 24, Len: 4, Kind: KindUint},
		}},
	})

	register(4, 0x0004, &Entry{
		Label: "Short Component Control",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "Component ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Instance ID", Off: 2, Len: 2, Kind: KindUint},
			{Label: "Component Class", Off: 4, Len: 1, Kind: KindEnum, Enum: componentClassNames, Mask: 0x3F},
			{Label: "Component State", Off: 5, Len: 1, Kind: KindUint},
			{Label: "Component Data 1", Off: 6, Len: 4, Kind: KindUint},
		}},
	})

	register(4, 0x0005, &Entry{
		Label: "Articulated Part Control",
		Size:  32,
		dec: layout{size: 28, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Part Enable", Off: 3, Len: 1, Kind: KindEnum, Enum: articulatedPartEnableNames, Mask: 0x01},
			{Label: "X Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Enabled", False: "Disabled"},
			{Label: "Y Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Z Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Roll Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Pitch Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Yaw Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x40, Shift: 6, True: "Enabled", False: "Disabled"},
			{Label: "X Offset", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Y Offset", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Z Offset", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 24, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0006, &Entry{
		Label: "Short Articulated Part Control",
		Size:  24,
		dec: layout{size: 20, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID 1", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Part ID 2", Off: 3, Len: 1, Kind: KindUint},
			{Label: "DOF 1 Select", Off: 4, Len: 1, Kind: KindUint, Mask: 0x07},
			{Label: "DOF 2 Select", Off: 4, Len: 1, Kind: KindUint, Mask: 0x38, Shift: 3},
			{Label: "Part 1 Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x40, Shift: 6, True: "Enabled", False: "Disabled"},
			{Label: "Part 2 Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Enabled", False: "Disabled"},
			{Label: "DOF 1", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "DOF 2", Off: 12, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0007, &Entry{
		Label: "Velocity Control",
		Size:  32,
		dec: layout{size: 28, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Apply to Part", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Part", False: "Entity"},
			{Label: "Coordinate System", Off: 3, Len: 1, Kind: KindEnum, Enum: coordinateSystemNames, Mask: 0x02, Shift: 1},
			{Label: "X Velocity", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Y Velocity", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Z Velocity", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Roll Rate", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Pitch Rate", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Yaw Rate", Off: 24, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0008, &Entry{
		Label: "Celestial Sphere Control",
		Size:  16,
		dec: layout{size: 12, fields: []field{
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

	register(4, 0x0009, &Entry{
		Label: "Atmosphere Control",
		Size:  32,
		dec: layout{size: 28, fields: []field{
			{Label: "Atmospheric Model Enable", Off: 0, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Humidity", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Air Temperature", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Visibility Range", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Horizontal Wind Speed", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Vertical Wind Speed", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Wind Direction", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Barometric Pressure", Off: 24, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x000A, &Entry{
		Label: "Environmental Region Control",
		Size:  48,
		dec: layout{size: 44, fields: []field{
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

	register(4, 0x000B, &Entry{
		Label: "Weather Control",
		Size:  56,
		dec: layout{size: 52, fields: []field{
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

	register(4, 0x000C, &Entry{
		Label: "Maritime Surface Conditions Control",
		Size:  24,
		dec: layout{size: 20, fields: []field{
			{Label: "Entity/Region ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Surface Conditions Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Whitecap Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Enabled", False: "Disabled"},
			{Label: "Scope", Off: 2, Len: 1, Kind: KindEnum, Enum: weatherScopeNames, Mask: 0x0C, Shift: 2},
			{Label: "Sea Surface Height", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Surface Water Temperature", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Surface Clarity", Off: 12, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x000D, &Entry{
		Label: "Wave Control",
		Size:  32,
		dec: layout{size: 28, fields: []field{
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

	register(4, 0x000E, &Entry{
		Label: "Terrestrial Surface Conditions Control",
		Size:  8,
		dec: layout{size: 4, fields: []field{
			{Label: "Entity/Region ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Surface Condition ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Surface Condition Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Scope", Off: 3, Len: 1, Kind: KindEnum, Enum: weatherScopeNames, Mask: 0x06, Shift: 1},
			{Label: "Severity", Off: 3, Len: 1, Kind: KindUint, Mask: 0xF8, Shift: 3},
		}},
	})

	register(4, 0x000F, &Entry{
		Label: "View Control",
		Size:  40,
		dec: layout{size: 36, fields: []field{
			{Label: "View ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "View Group", Off: 2, Len: 1, Kind: KindUint},
			{Label: "X Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Y Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Enabled", False: "Disabled"},
			{Label: "Z Offset Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Roll Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Pitch Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Yaw Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "X Offset", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Y Offset", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Z Offset", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 28, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0010, &Entry{
		Label: "Sensor Control",
		Size:  24,
		dec: layout{size: 20, fields: []field{
			{Label: "View ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Sensor ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Sensor On/Off", Off: 3, Len: 1, Kind: KindEnum, Enum: sensorOnOffNames, Mask: 0x01},
			{Label: "Polarity", Off: 3, Len: 1, Kind: KindEnum, Enum: polarityNames, Mask: 0x02, Shift: 1},
			{Label: "Line-by-Line Dropout", Off: 3, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "Automatic Gain", Off: 3, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Track White/Black", Off: 3, Len: 1, Kind: KindEnum, Enum: trackPolarityNames, Mask: 0x10, Shift: 4},
			{Label: "Track Mode", Off: 3, Len: 1, Kind: KindEnum, Enum: trackModeNames, Mask: 0xE0, Shift: 5},
			{Label: "Response Type", Off: 4, Len: 1, Kind: KindEnum, Enum: responseTypeNames, Mask: 0x01},
			{Label: "Gain", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Level", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "AC Coupling", Off: 16, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0011, &Entry{
		Label: "Motion Tracker Control",
		Size:  8,
		dec: layout{size: 4, fields: []field{
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
		}},
	})

	register(4, 0x0012, &Entry{
		Label: "Earth Reference Model Definition",
		Size:  24,
		dec: layout{size: 20, fields: []field{
			{Label: "Custom ERM Enable", Off: 0, Len: 1, Kind: KindEnum, Enum: earthModelNames, Mask: 0x01},
			{Label: "Equatorial Radius", Off: 4, Len: 8, Kind: KindFloat},
			{Label: "Flattening", Off: 12, Len: 8, Kind: KindFloat},
		}},
	})

	register(4, 0x0013, &Entry{
		Label: "Acceleration Control",
		Size:  32,
		dec: layout{size: 28, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Apply to Part", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Part", False: "Entity"},
			{Label: "Coordinate System", Off: 3, Len: 1, Kind: KindEnum, Enum: coordinateSystemNames, Mask: 0x02, Shift: 1},
			{Label: "Acceleration X", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Acceleration Y", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Acceleration Z", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Roll Acceleration", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Pitch Acceleration", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Yaw Acceleration", Off: 24, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0014, &Entry{
		Label: "View Definition",
		Size:  40,
		dec: layout{size: 36, fields: []field{
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
			{Label: "Near Clipping Plane", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Far Clipping Plane", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Field of View Left", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Field of View Right", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Field of View Top", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Field of View Bottom", Off: 28, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0015, &Entry{
		Label: "Collision Detection Segment Definition",
		Size:  40,
		dec: layout{size: 36, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Segment ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Segment Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "X1", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Y1", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Z1", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "X2", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Y2", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Z2", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Material Mask", Off: 28, Len: 4, Kind: KindUint},
		}},
	})

	register(4, 0x0016, &Entry{
		Label: "Collision Detection Volume Definition",
		Size:  48,
		dec: layout{size: 44, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Volume ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Volume Enable", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Enabled", False: "Disabled"},
			{Label: "Volume Type", Off: 3, Len: 1, Kind: KindBool, Mask: 0x02, Shift: 1, True: "Cylinder", False: "Sphere"},
			{Label: "X Offset", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Y Offset", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Z Offset", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Radius/Height", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Width", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Depth", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 28, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 32, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 36, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0017, &Entry{
		Label: "HAT/HOT Request",
		Size:  40,
		dec: layout{size: 36, fields: []field{
			{Label: "HAT/HOT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Request Type", Off: 2, Len: 1, Kind: KindEnum, Enum: hatHotTypeNames, Mask: 0x03},
			{Label: "Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x04, Shift: 2},
			{Label: "Update Period", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Latitude/X Offset", Off: 8, Len: 8, Kind: KindFloat},
			{Label: "Longitude/Y Offset", Off: 16, Len: 8, Kind: KindFloat},
			{Label: "Altitude/Z Offset", Off: 24, Len: 8, Kind: KindFloat},
		}},
	})

	register(4, 0x0018, &Entry{
		Label: "Line of Sight Segment Request",
		Size:  64,
		dec: layout{size: 60, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Request Type", Off: 2, Len: 1, Kind: KindEnum, Enum: responseTypeNames, Mask: 0x01},
			{Label: "Source Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x02, Shift: 1},
			{Label: "Destination Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x04, Shift: 2},
			{Label: "Response Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x08, Shift: 3},
			{Label: "Destination Entity Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x10, Shift: 4},
			{Label: "Alpha Threshold", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Source Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Destination Entity ID", Off: 6, Len: 2, Kind: KindUint},
			{Label: "Material Mask", Off: 8, Len: 4, Kind: KindUint},
			{Label: "Source Latitude/X", Off: 12, Len: 8, Kind: KindFloat},
			{Label: "Source Longitude/Y", Off: 20, Len: 8, Kind: KindFloat},
			{Label: "Source Altitude/Z", Off: 28, Len: 8, Kind: KindFloat},
			{Label: "Destination Latitude/X", Off: 36, Len: 8, Kind: KindFloat},
			{Label: "Destination Longitude/Y", Off: 44, Len: 8, Kind: KindFloat},
			{Label: "Destination Altitude/Z", Off: 52, Len: 8, Kind: KindFloat},
		}},
	})

	register(4, 0x0019, &Entry{
		Label: "Line of Sight Vector Request",
		Size:  56,
		dec: layout{size: 52, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Request Type", Off: 2, Len: 1, Kind: KindEnum, Enum: responseTypeNames, Mask: 0x01},
			{Label: "Source Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x02, Shift: 1},
			{Label: "Response Coordinate System", Off: 2, Len: 1, Kind: KindEnum, Enum: coordinateSystemGeodeticNames, Mask: 0x04, Shift: 2},
			{Label: "Alpha Threshold", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Source Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Update Period", Off: 6, Len: 1, Kind: KindUint},
			{Label: "Azimuth", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Elevation", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Minimum Range", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Maximum Range", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Source Latitude/X", Off: 24, Len: 8, Kind: KindFloat},
			{Label: "Source Longitude/Y", Off: 32, Len: 8, Kind: KindFloat},
			{Label: "Source Altitude/Z", Off: 40, Len: 8, Kind: KindFloat},
			{Label: "Material Mask", Off: 48, Len: 4, Kind: KindUint},
		}},
	})

	register(4, 0x001A, &Entry{
		Label: "Position Request",
		Size:  8,
		dec: layout{size: 4, fields: []field{
			{Label: "Object ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Update Mode", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Continuous", False: "One-Shot"},
			{Label: "Object Class", Off: 3, Len: 1, Kind: KindUint, Mask: 0x0E, Shift: 1},
			{Label: "Coordinate System", Off: 3, Len: 1, Kind: KindUint, Mask: 0x30, Shift: 4},
		}},
	})

	register(4, 0x001B, &Entry{
		Label: "Environmental Conditions Request",
		Size:  32,
		dec: layout{size: 28, fields: []field{
			{Label: "Request Type", Off: 0, Len: 1, Kind: KindUint, Mask: 0x0F},
			{Label: "Request ID", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Latitude", Off: 4, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 12, Len: 8, Kind: KindFloat},
			{Label: "Altitude", Off: 20, Len: 8, Kind: KindFloat},
		}},
	})

	register(4, 0x001C, &Entry{
		Label: "Symbol Surface Definition",
		Size:  64,
		dec: layout{size: 60, fields: []field{
			{Label: "Surface ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Surface State", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolSurfaceStateNames, Mask: 0x01},
			{Label: "Attach Type", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolAttachNames, Mask: 0x02, Shift: 1},
			{Label: "Billboard", Off: 2, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Billboard", False: "Non-Billboard"},
			{Label: "Perspective Growth Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Entity/View ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "X Offset/Left Edge", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Y Offset/Right Edge", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Z Offset/Top Edge", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Yaw/Bottom Edge", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 28, Len: 4, Kind: KindFloat},
			{Label: "Width", Off: 32, Len: 4, Kind: KindFloat},
			{Label: "Height", Off: 36, Len: 4, Kind: KindFloat},
			{Label: "Minimum U", Off: 40, Len: 4, Kind: KindFloat},
			{Label: "Maximum U", Off: 44, Len: 4, Kind: KindFloat},
			{Label: "Minimum V", Off: 48, Len: 4, Kind: KindFloat},
			{Label: "Maximum V", Off: 52, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x001D, &Entry{
		Label:    "Symbol Text Definition",
		Variable: true,
		Size:     16,
		dec: textDecoder{
			prefix: layout{size: 8, fields: []field{
				{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
				{Label: "Alignment", Off: 2, Len: 1, Kind: KindEnum, Enum: textAlignmentNames, Mask: 0x0F},
				{Label: "Orientation", Off: 2, Len: 1, Kind: KindEnum, Enum: textOrientationNames, Mask: 0x30, Shift: 4},
				{Label: "Font ID", Off: 3, Len: 1, Kind: KindEnum, Enum: fontNames},
				{Label: "Font Size", Off: 4, Len: 4, Kind: KindFloat},
			}},
			textLabel: "Text",
		},
	})

	register(4, 0x001E, &Entry{
		Label:    "Symbol Circle Definition",
		Variable: true,
		Size:     16,
		dec: recordDecoder{
			prefix: layout{size: 12, fields: []field{
				{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
				{Label: "Drawing Style", Off: 2, Len: 1, Kind: KindEnum, Enum: drawingStyleNames, Mask: 0x01},
				{Label: "Stipple Pattern", Off: 2, Len: 2, Kind: KindUint},
				{Label: "Line Width", Off: 4, Len: 4, Kind: KindFloat},
				{Label: "Stipple Pattern Length", Off: 8, Len: 4, Kind: KindFloat},
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

	register(4, 0x001F, &Entry{
		Label:    "Symbol Polygon Definition",
		Variable: true,
		Size:     16,
		dec: recordDecoder{
			prefix: layout{size: 12, fields: []field{
				{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
				{Label: "Primitive Type", Off: 2, Len: 1, Kind: KindEnum, Enum: lineStyleNames, Mask: 0x0F},
				{Label: "Stipple Pattern", Off: 4, Len: 2, Kind: KindUint},
				{Label: "Line Width", Off: 6, Len: 4, Kind: KindFloat},
				{Label: "Stipple Pattern Length", Off: 10, Len: 2, Kind: KindUint},
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

	register(4, 0x0020, &Entry{
		Label: "Symbol Clone",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Source Type", Off: 2, Len: 1, Kind: KindEnum, Enum: cloneSourceNames, Mask: 0x01},
			{Label: "Source ID", Off: 4, Len: 2, Kind: KindUint},
		}},
	})

	register(4, 0x0021, &Entry{
		Label: "Symbol Control",
		Size:  40,
		dec: layout{size: 36, fields: []field{
			{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Symbol State", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolStateNames, Mask: 0x03},
			{Label: "Attach State", Off: 2, Len: 1, Kind: KindEnum, Enum: attachStateNames, Mask: 0x04, Shift: 2},
			{Label: "Flash Control", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolFlashControlNames, Mask: 0x08, Shift: 3},
			{Label: "Inherit Color", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Inherited", False: "Not Inherited"},
			{Label: "Flash Duty Cycle", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Parent Symbol ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Surface ID", Off: 6, Len: 2, Kind: KindUint},
			{Label: "Layer", Off: 8, Len: 1, Kind: KindUint},
			{Label: "Red", Off: 9, Len: 1, Kind: KindUint},
			{Label: "Green", Off: 10, Len: 1, Kind: KindUint},
			{Label: "Blue", Off: 11, Len: 1, Kind: KindUint},
			{Label: "Alpha", Off: 12, Len: 1, Kind: KindUint},
			{Label: "Flash Period", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Position U", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Position V", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Rotation", Off: 28, Len: 4, Kind: KindFloat},
			{Label: "Scale U", Off: 32, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0x0022, &Entry{
		Label: "Short Symbol Control",
		Size:  24,
		dec: layout{size: 20, fields: []field{
			{Label: "Symbol ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Symbol State", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolStateNames, Mask: 0x03},
			{Label: "Attach State", Off: 2, Len: 1, Kind: KindEnum, Enum: attachStateNames, Mask: 0x04, Shift: 2},
			{Label: "Flash Control", Off: 2, Len: 1, Kind: KindEnum, Enum: symbolFlashControlNames, Mask: 0x08, Shift: 3},
			{Label: "Inherit Color", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Inherited", False: "Not Inherited"},
			{Label: "Attribute 1 Select", Off: 4, Len: 1, Kind: KindUint},
			{Label: "Attribute 2 Select", Off: 5, Len: 1, Kind: KindUint},
			{Label: "Attribute 1 Value", Off: 8, Len: 4, Kind: KindUint},
			{Label: "Attribute 2 Value", Off: 12, Len: 4, Kind: KindUint},
		}},
	})

	register(4, 0x0023, &Entry{
		Label: "Entity Control",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Entity State", Off: 2, Len: 1, Kind: KindEnum, Enum: entityStateNames, Mask: 0x03},
			{Label: "Collision Reporting", Off: 2, Len: 1, Kind: KindEnum, Enum: collisionDetectionNames, Mask: 0x04, Shift: 2},
			{Label: "Inherit Alpha", Off: 2, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Inherited", False: "Not Inherited"},
			{Label: "Smoothing Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Extended Entity Type", Off: 2, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Extended", False: "Short"},
			{Label: "Alpha", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Entity Type", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Parent Entity ID", Off: 6, Len: 2, Kind: KindUint},
		}},
	})

	register(4, 0x0024, &Entry{
		Label: "Animation Control",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Animation ID", Off: 2, Len: 2, Kind: KindUint},
			{Label: "Animation State", Off: 4, Len: 1, Kind: KindEnum, Enum: animationStateNames, Mask: 0x03},
			{Label: "Animation Direction", Off: 4, Len: 1, Kind: KindEnum, Enum: animationDirectionNames, Mask: 0x04, Shift: 2},
			{Label: "Animation Loop Mode", Off: 4, Len: 1, Kind: KindEnum, Enum: animationLoopNames, Mask: 0x08, Shift: 3},
			{Label: "Inherit Alpha", Off: 4, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Inherited", False: "Not Inherited"},
			{Label: "Alpha", Off: 5, Len: 1, Kind: KindUint},
			{Label: "Animation Speed", Off: 8, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, v4PacketIDStartOfFrame, &Entry{
		Label: "Start of Frame",
		Size:  v4StartOfFrameSize,
		dec: layout{size: 20, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Earth Reference Model", Off: 1, Len: 1, Kind: KindEnum, Enum: earthModelNames, Mask: 0x01},
			{Label: "Timestamp Valid", Off: 1, Len: 1, Kind: KindEnum, Enum: timeOfDayValidNames, Mask: 0x02, Shift: 1},
			{Label: "Database Number", Off: 2, Len: 1, Kind: KindInt},
			{Label: "IG Status Code", Off: 3, Len: 1, Kind: KindUint},
			{Label: "IG Frame Number", Off: 4, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 8, Len: 4, Kind: KindUint},
			{Label: "Last Host Frame Number", Off: 12, Len: 4, Kind: KindUint},
		}},
	})

	register(4, 0xFFFE, &Entry{
		Label: "HAT/HOT Response",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "HAT/HOT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x01},
			{Label: "Response Type", Off: 2, Len: 1, Kind: KindEnum, Enum: hatHotTypeNames, Mask: 0x02, Shift: 1},
			{Label: "Host Frame Number LSN", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Height", Off: 4, Len: 8, Kind: KindFloat},
		}},
	})

	register(4, 0xFFFD, &Entry{
		Label: "HAT/HOT Extended Response",
		Size:  40,
		dec: layout{size: 36, fields: []field{
			{Label: "HAT/HOT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x01},
			{Label: "Host Frame Number LSN", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Height Above Terrain", Off: 4, Len: 8, Kind: KindFloat},
			{Label: "Height of Terrain", Off: 12, Len: 8, Kind: KindFloat},
			{Label: "Material Code", Off: 20, Len: 4, Kind: KindUint},
			{Label: "Normal Vector Azimuth", Off: 24, Len: 4, Kind: KindFloat},
			{Label: "Normal Vector Elevation", Off: 28, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0xFFFC, &Entry{
		Label: "Line of Sight Response",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x01},
			{Label: "Entity ID Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x02, Shift: 1},
			{Label: "Visible", Off: 2, Len: 1, Kind: KindEnum, Enum: visibilityNames, Mask: 0x04, Shift: 2},
			{Label: "Host Frame Number LSN", Off: 2, Len: 1, Kind: KindUint, Mask: 0xF0, Shift: 4},
			{Label: "Response Count", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Range", Off: 8, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0xFFFB, &Entry{
		Label: "Line of Sight Extended Response",
		Size:  56,
		dec: layout{size: 52, fields: []field{
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

	register(4, 0xFFFA, &Entry{
		Label: "Sensor Response",
		Size:  24,
		dec: layout{size: 20, fields: []field{
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

	register(4, 0xFFF9, &Entry{
		Label: "Sensor Extended Response",
		Size:  48,
		dec: layout{size: 44, fields: []field{
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
			{Label: "Track Point Altitude", Off: 40, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0xFFF8, &Entry{
		Label: "Position Response",
		Size:  48,
		dec: layout{size: 44, fields: []field{
			{Label: "Object ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Object Class", Off: 3, Len: 1, Kind: KindUint, Mask: 0x07},
			{Label: "Coordinate System", Off: 3, Len: 1, Kind: KindUint, Mask: 0x18, Shift: 3},
			{Label: "Latitude/X", Off: 4, Len: 8, Kind: KindFloat},
			{Label: "Longitude/Y", Off: 12, Len: 8, Kind: KindFloat},
			{Label: "Altitude/Z", Off: 20, Len: 8, Kind: KindFloat},
			{Label: "Roll", Off: 28, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 32, Len: 4, Kind: KindFloat},
			{Label: "Yaw", Off: 36, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0xFFF7, &Entry{
		Label: "Weather Conditions Response",
		Size:  32,
		dec: layout{size: 28, fields: []field{
			{Label: "Request ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Humidity", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Air Temperature", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Visibility Range", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Horizontal Wind Speed", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Vertical Wind Speed", Off: 16, Len: 4, Kind: KindFloat},
			{Label: "Wind Direction", Off: 20, Len: 4, Kind: KindFloat},
			{Label: "Barometric Pressure", Off: 24, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0xFFF6, &Entry{
		Label: "Aerosol Concentration Response",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "Request ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Layer ID", Off: 1, Len: 1, Kind: KindEnum, Enum: weatherLayerNames},
			{Label: "Aerosol Concentration", Off: 4, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0xFFF5, &Entry{
		Label: "Maritime Surface Conditions Response",
		Size:  24,
		dec: layout{size: 20, fields: []field{
			{Label: "Request ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Sea Surface Height", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Surface Water Temperature", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Surface Clarity", Off: 12, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0xFFF4, &Entry{
		Label: "Terrestrial Surface Conditions Response",
		Size:  8,
		dec: layout{size: 4, fields: []field{
			{Label: "Request ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Surface Condition ID", Off: 1, Len: 1, Kind: KindUint},
		}},
	})

	register(4, 0xFFF3, &Entry{
		Label: "Collision Detection Segment Notification",
		Size:  24,
		dec: layout{size: 20, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Segment ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Contact Type", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Entity", False: "Non-Entity"},
			{Label: "Contacted Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Material Code", Off: 8, Len: 4, Kind: KindUint},
			{Label: "Intersection Distance", Off: 12, Len: 4, Kind: KindFloat},
		}},
	})

	register(4, 0xFFF2, &Entry{
		Label: "Collision Detection Volume Notification",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Volume ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Contact Type", Off: 3, Len: 1, Kind: KindBool, Mask: 0x01, True: "Entity", False: "Non-Entity"},
			{Label: "Contacted Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Contacted Volume ID", Off: 6, Len: 1, Kind: KindUint},
		}},
	})

	register(4, 0xFFF1, &Entry{
		Label: "Animation Stop Notification",
		Size:  8,
		dec: layout{size: 4, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Animation ID", Off: 2, Len: 2, Kind: KindUint},
		}},
	})

	register(4, 0xFFF0, &Entry{
		Label: "Event Notification",
		Size:  16,
		dec: layout{size: 12, fields: []field{
			{Label: "Event ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Event Data 1", Off: 2, Len: 4, Kind: KindUint},
			{Label: "Event Data 2", Off: 6, Len: 4, Kind: KindUint},
		}},
	})

	register(4, 0xFFEF, &Entry{
		Label:    "Image Generator Message",
		Variable: true,
		Size:     8,
		dec: textDecoder{
			prefix: layout{size: 4, fields: []field{
				{Label: "Message ID", Off: 0, Len: 2, Kind: KindUint},
			}},
			textLabel: "Message",
		},
	})
}
