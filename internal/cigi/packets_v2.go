package cigi

// CIGI 2 packet table. Field offsets are payload-relative: the shared
// 2-byte [id][size] header has already been stripped by the frame
// walker, so wire offset N appears here as N-2. CIGI 2 is big-endian
// by protocol definition and carries its legacy angles as 16-bit
// signed fixed-point values with 7 fraction bits.

func init() {
	register(2, packetIDIGControl, &Entry{
		Label: "IG Control",
		Size:  v2IGControlSize,
		dec: layout{size: 14, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Database Number", Off: 1, Len: 1, Kind: KindInt},
			{Label: "IG Mode", Off: 2, Len: 1, Kind: KindEnum, Enum: igModeNames, Mask: 0xC0, Shift: 6},
			{Label: "Tracking Device Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Tracking Device Boresight", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "On", False: "Off"},
			{Label: "Frame Counter", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 10, Len: 4, Kind: KindUint},
		}},
	})

	register(2, 2, &Entry{
		Label: "Entity Control",
		Size:  48,
		dec: layout{size: 46, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Entity State", Off: 2, Len: 1, Kind: KindEnum, Enum: entityStateNames, Mask: 0xC0, Shift: 6},
			{Label: "Attach State", Off: 2, Len: 1, Kind: KindEnum, Enum: attachStateNames, Mask: 0x20, Shift: 5},
			{Label: "Collision Detection", Off: 2, Len: 1, Kind: KindEnum, Enum: collisionDetectionNames, Mask: 0x10, Shift: 4},
			{Label: "Effect State", Off: 2, Len: 1, Kind: KindEnum, Enum: specialEffectStateNames, Mask: 0x0C, Shift: 2},
			{Label: "Entity Type", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Parent Entity ID", Off: 6, Len: 2, Kind: KindUint},
			{Label: "Opacity", Off: 8, Len: 1, Kind: KindUint},
			{Label: "Internal Temperature", Off: 9, Len: 1, Kind: KindInt},
			{Label: "Roll", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Pitch", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Heading", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Latitude", Off: 22, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 30, Len: 8, Kind: KindFloat},
			{Label: "Altitude", Off: 38, Len: 8, Kind: KindFloat},
		}},
	})

	register(2, 3, &Entry{
		Label: "Component Control",
		Size:  20,
		dec: layout{size: 18, fields: []field{
			{Label: "Instance ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Component Class", Off: 2, Len: 1, Kind: KindEnum, Enum: componentClassNames},
			{Label: "Component ID", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Component State", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Component Value 1", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Component Value 2", Off: 10, Len: 4, Kind: KindUint},
			{Label: "Component Value 3", Off: 14, Len: 4, Kind: KindUint},
		}},
	})

	register(2, 4, &Entry{
		Label: "Articulated Parts Control",
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
			{Label: "Roll", Off: 18, Len: 2, Kind: KindFixed},
			{Label: "Pitch", Off: 20, Len: 2, Kind: KindFixed},
			{Label: "Yaw", Off: 22, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 5, &Entry{
		Label: "Rate Control",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Part ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "X Rate", Off: 4, Len: 4, Kind: KindFloat},
			{Label: "Y Rate", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Z Rate", Off: 12, Len: 4, Kind: KindFloat},
			{Label: "Roll Rate", Off: 16, Len: 2, Kind: KindFixed},
			{Label: "Pitch Rate", Off: 18, Len: 2, Kind: KindFixed},
			{Label: "Yaw Rate", Off: 20, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 6, &Entry{
		Label: "Environment Control",
		Size:  36,
		dec: layout{size: 34, fields: []field{
			{Label: "Hour", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Minute", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Date", Off: 2, Len: 4, Kind: KindUint},
			{Label: "Air Temperature", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Global Visibility Range", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Wind Speed", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Wind Direction", Off: 18, Len: 2, Kind: KindFixed},
			{Label: "Humidity", Off: 20, Len: 1, Kind: KindUint},
			{Label: "MODTRAN Enable", Off: 21, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Enabled", False: "Disabled"},
			{Label: "Barometric Pressure", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Aerosol Concentration", Off: 26, Len: 4, Kind: KindFloat},
		}},
	})

	register(2, 7, &Entry{
		Label: "Weather Control",
		Size:  44,
		dec: layout{size: 42, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Weather Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Enabled", False: "Disabled"},
			{Label: "Scud Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x40, Shift: 6, True: "Enabled", False: "Disabled"},
			{Label: "Random Winds Aloft", Off: 2, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Severity", Off: 2, Len: 1, Kind: KindEnum, Enum: severityNames, Mask: 0x1C, Shift: 2},
			{Label: "Phenomenon Type", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Air Temperature", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Opacity", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Scud Frequency", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Coverage", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Elevation", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Thickness", Off: 26, Len: 4, Kind: KindFloat},
			{Label: "Transition Band", Off: 30, Len: 4, Kind: KindFloat},
			{Label: "Wind Speed", Off: 34, Len: 4, Kind: KindFloat},
			{Label: "Wind Direction", Off: 38, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 8, &Entry{
		Label: "View Control",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "View ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "View Group", Off: 3, Len: 1, Kind: KindUint},
			{Label: "X Offset Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Enabled", False: "Disabled"},
			{Label: "Y Offset Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x40, Shift: 6, True: "Enabled", False: "Disabled"},
			{Label: "Z Offset Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Roll Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Pitch Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x08, Shift: 3, True: "Enabled", False: "Disabled"},
			{Label: "Yaw Enable", Off: 4, Len: 1, Kind: KindBool, Mask: 0x04, Shift: 2, True: "Enabled", False: "Disabled"},
			{Label: "X Offset", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y Offset", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z Offset", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Roll", Off: 18, Len: 2, Kind: KindFixed},
			{Label: "Pitch", Off: 20, Len: 2, Kind: KindFixed},
			{Label: "Yaw", Off: 22, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 9, &Entry{
		Label: "Sensor Control",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "View ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Sensor ID", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Sensor On/Off", Off: 2, Len: 1, Kind: KindEnum, Enum: sensorOnOffNames, Mask: 0x80, Shift: 7},
			{Label: "Polarity", Off: 2, Len: 1, Kind: KindEnum, Enum: polarityNames, Mask: 0x40, Shift: 6},
			{Label: "Line-by-Line Dropout", Off: 2, Len: 1, Kind: KindBool, Mask: 0x20, Shift: 5, True: "Enabled", False: "Disabled"},
			{Label: "Automatic Gain", Off: 2, Len: 1, Kind: KindBool, Mask: 0x10, Shift: 4, True: "Enabled", False: "Disabled"},
			{Label: "Track Mode", Off: 3, Len: 1, Kind: KindEnum, Enum: trackModeNames, Mask: 0xF0, Shift: 4},
			{Label: "Track Polarity", Off: 3, Len: 1, Kind: KindEnum, Enum: trackPolarityNames, Mask: 0x08, Shift: 3},
			{Label: "Gain", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Level", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "AC Coupling", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Noise", Off: 18, Len: 4, Kind: KindFloat},
		}},
	})

	register(2, 10, &Entry{
		Label: "Trajectory Definition",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Acceleration", Off: 2, Len: 4, Kind: KindFloat},
			{Label: "Retardation", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Terminal Velocity", Off: 10, Len: 4, Kind: KindFloat},
		}},
	})

	register(2, 11, &Entry{
		Label: "Special Effect Definition",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Sequence Direction", Off: 2, Len: 1, Kind: KindEnum, Enum: animationDirectionNames, Mask: 0x80, Shift: 7},
			{Label: "Color Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x40, Shift: 6, True: "Enabled", False: "Disabled"},
			{Label: "Effect Sizing", Off: 2, Len: 1, Kind: KindEnum, Enum: effectSizingNames, Mask: 0x20, Shift: 5},
			{Label: "Red", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Green", Off: 4, Len: 1, Kind: KindUint},
			{Label: "Blue", Off: 5, Len: 1, Kind: KindUint},
			{Label: "X Scale", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Y Scale", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Z Scale", Off: 14, Len: 4, Kind: KindFloat},
			{Label: "Time Scale", Off: 18, Len: 4, Kind: KindFloat},
			{Label: "Effect Count", Off: 22, Len: 2, Kind: KindUint},
			{Label: "Effect Separation", Off: 24, Len: 2, Kind: KindUint},
			{Label: "Burst Rate", Off: 26, Len: 4, Kind: KindFloat},
		}},
	})

	register(2, 12, &Entry{
		Label: "View Definition",
		Size:  32,
		dec: layout{size: 30, fields: []field{
			{Label: "View ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "View Group", Off: 1, Len: 1, Kind: KindUint},
			{Label: "View Type", Off: 2, Len: 1, Kind: KindEnum, Enum: viewTypeNames, Mask: 0xE0, Shift: 5},
			{Label: "Pixel Replication", Off: 2, Len: 1, Kind: KindEnum, Enum: pixelReplicationNames, Mask: 0x1C, Shift: 2},
			{Label: "Mirror Mode", Off: 2, Len: 1, Kind: KindEnum, Enum: mirrorModeNames, Mask: 0x03},
			{Label: "Tracker Assign", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Near Clipping Plane", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Far Clipping Plane", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Field of View Left", Off: 14, Len: 2, Kind: KindFixed},
			{Label: "Field of View Right", Off: 16, Len: 2, Kind: KindFixed},
			{Label: "Field of View Top", Off: 18, Len: 2, Kind: KindFixed},
			{Label: "Field of View Bottom", Off: 20, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 13, &Entry{
		Label: "Collision Detection Segment Definition",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Segment Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Enabled", False: "Disabled"},
			{Label: "Segment ID", Off: 3, Len: 1, Kind: KindUint},
			{Label: "Collision Mask", Off: 4, Len: 4, Kind: KindUint},
			{Label: "X1", Off: 8, Len: 2, Kind: KindFixed},
			{Label: "Y1", Off: 10, Len: 2, Kind: KindFixed},
			{Label: "Z1", Off: 12, Len: 2, Kind: KindFixed},
			{Label: "X2", Off: 14, Len: 2, Kind: KindFixed},
			{Label: "Y2", Off: 16, Len: 2, Kind: KindFixed},
			{Label: "Z2", Off: 18, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 14, &Entry{
		Label: "Collision Detection Volume Definition",
		Size:  20,
		dec: layout{size: 18, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Volume Enable", Off: 2, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Enabled", False: "Disabled"},
			{Label: "Volume ID", Off: 3, Len: 1, Kind: KindUint},
			{Label: "X Offset", Off: 4, Len: 2, Kind: KindFixed},
			{Label: "Y Offset", Off: 6, Len: 2, Kind: KindFixed},
			{Label: "Z Offset", Off: 8, Len: 2, Kind: KindFixed},
			{Label: "Height", Off: 10, Len: 2, Kind: KindFixed},
			{Label: "Width", Off: 12, Len: 2, Kind: KindFixed},
			{Label: "Depth", Off: 14, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 41, &Entry{
		Label: "Height Above Terrain Request",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "HAT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Latitude", Off: 6, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 14, Len: 8, Kind: KindFloat},
		}},
	})

	register(2, 42, &Entry{
		Label: "Line of Sight Occult Request",
		Size:  48,
		dec: layout{size: 46, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Source Latitude", Off: 6, Len: 8, Kind: KindFloat},
			{Label: "Source Longitude", Off: 14, Len: 8, Kind: KindFloat},
			{Label: "Source Altitude", Off: 22, Len: 4, Kind: KindFloat},
			{Label: "Destination Latitude", Off: 26, Len: 8, Kind: KindFloat},
			{Label: "Destination Longitude", Off: 34, Len: 8, Kind: KindFloat},
			{Label: "Destination Altitude", Off: 42, Len: 4, Kind: KindFloat},
		}},
	})

	register(2, 43, &Entry{
		Label: "Line of Sight Range Request",
		Size:  48,
		dec: layout{size: 46, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Azimuth", Off: 2, Len: 2, Kind: KindFixed},
			{Label: "Elevation", Off: 4, Len: 2, Kind: KindFixed},
			{Label: "Minimum Range", Off: 6, Len: 4, Kind: KindFloat},
			{Label: "Maximum Range", Off: 10, Len: 4, Kind: KindFloat},
			{Label: "Source Latitude", Off: 14, Len: 8, Kind: KindFloat},
			{Label: "Source Longitude", Off: 22, Len: 8, Kind: KindFloat},
			{Label: "Source Altitude", Off: 30, Len: 4, Kind: KindFloat},
		}},
	})

	register(2, 44, &Entry{
		Label: "Height of Terrain Request",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "HOT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Latitude", Off: 6, Len: 8, Kind: KindFloat},
			{Label: "Longitude", Off: 14, Len: 8, Kind: KindFloat},
		}},
	})

	register(2, packetIDStartOfFrame, &Entry{
		Label: "Start of Frame",
		Size:  v2StartOfFrameSize,
		dec: layout{size: 14, fields: []field{
			{Label: "CIGI Version", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Database Number", Off: 1, Len: 1, Kind: KindInt},
			{Label: "IG Status Code", Off: 2, Len: 1, Kind: KindUint},
			{Label: "IG Mode", Off: 3, Len: 1, Kind: KindEnum, Enum: igModeNames, Mask: 0xC0, Shift: 6},
			{Label: "Frame Counter", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Timestamp", Off: 10, Len: 4, Kind: KindUint},
		}},
	})

	register(2, 102, &Entry{
		Label: "Height Above Terrain Response",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "HAT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x80, Shift: 7},
			{Label: "Material Type", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Altitude", Off: 14, Len: 8, Kind: KindFloat},
		}},
	})

	register(2, 103, &Entry{
		Label: "Line of Sight Response",
		Size:  40,
		dec: layout{size: 38, fields: []field{
			{Label: "LOS ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x80, Shift: 7},
			{Label: "Occult Response", Off: 2, Len: 1, Kind: KindEnum, Enum: visibilityNames, Mask: 0x40, Shift: 6},
			{Label: "Material Type", Off: 4, Len: 4, Kind: KindUint},
			{Label: "Range", Off: 8, Len: 4, Kind: KindFloat},
			{Label: "Intersection Latitude", Off: 12, Len: 8, Kind: KindFloat},
			{Label: "Intersection Longitude", Off: 20, Len: 8, Kind: KindFloat},
			{Label: "Intersection Altitude", Off: 28, Len: 4, Kind: KindFloat},
		}},
	})

	register(2, 104, &Entry{
		Label: "Collision Detection Segment Response",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Segment ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Contact Type", Off: 3, Len: 1, Kind: KindBool, Mask: 0x80, Shift: 7, True: "Entity", False: "Non-Entity"},
			{Label: "Contacted Entity ID", Off: 4, Len: 2, Kind: KindUint},
			{Label: "Material Type", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Collision X", Off: 10, Len: 2, Kind: KindFixed},
			{Label: "Collision Y", Off: 12, Len: 2, Kind: KindFixed},
			{Label: "Collision Z", Off: 14, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 105, &Entry{
		Label: "Sensor Response",
		Size:  12,
		dec: layout{size: 10, fields: []field{
			{Label: "View ID", Off: 0, Len: 1, Kind: KindUint},
			{Label: "Sensor ID", Off: 1, Len: 1, Kind: KindUint},
			{Label: "Sensor Status", Off: 2, Len: 1, Kind: KindUint, Mask: 0xC0, Shift: 6},
			{Label: "Gate X Position", Off: 4, Len: 2, Kind: KindFixed},
			{Label: "Gate Y Position", Off: 6, Len: 2, Kind: KindFixed},
		}},
	})

	register(2, 106, &Entry{
		Label: "Height of Terrain Response",
		Size:  24,
		dec: layout{size: 22, fields: []field{
			{Label: "HOT ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Valid", Off: 2, Len: 1, Kind: KindEnum, Enum: validityNames, Mask: 0x80, Shift: 7},
			{Label: "Material Type", Off: 6, Len: 4, Kind: KindUint},
			{Label: "Altitude", Off: 14, Len: 8, Kind: KindFloat},
		}},
	})

	register(2, 107, &Entry{
		Label: "Collision Detection Volume Response",
		Size:  16,
		dec: layout{size: 14, fields: []field{
			{Label: "Entity ID", Off: 0, Len: 2, Kind: KindUint},
			{Label: "Volume ID", Off: 2, Len: 1, Kind: KindUint},
			{Label: "Contacted Entity ID", Off: 4, Len: 2, Kind: KindUint},
		}},
	})

	register(2, 108, &Entry{
		Label:    "Image Generator Message",
		Variable: true,
		Size:     4,
		dec: textDecoder{
			prefix: layout{size: 2, fields: []field{
				{Label: "Message ID", Off: 0, Len: 2, Kind: KindUint},
			}},
			textLabel: "Message",
		},
	})
}
