package cigi

// Human-readable label tables for enumerated wire values. Pure data.

var igModeNames = EnumTable{
	0: "Reset/Standby",
	1: "Operate",
	2: "Debug",
}

var v4IGModeNames = EnumTable{
	0: "Reset/Standby",
	1: "Operate",
	2: "Debug",
}

var entityStateNames = EnumTable{
	0: "Inactive/Standby",
	1: "Active",
	2: "Destroyed",
}

var attachStateNames = EnumTable{
	0: "Detach",
	1: "Attach",
}

var collisionDetectionNames = EnumTable{
	0: "Disabled",
	1: "Enabled",
}

var groundClampNames = EnumTable{
	0: "No Clamp",
	1: "Non-Conformal",
	2: "Conformal",
}

var animationDirectionNames = EnumTable{
	0: "Forward",
	1: "Backward",
}

var animationLoopNames = EnumTable{
	0: "One-Shot",
	1: "Continuous",
}

var animationStateNames = EnumTable{
	0: "Stop",
	1: "Pause",
	2: "Play",
	3: "Continue",
}

var componentClassNames = EnumTable{
	0:  "Entity",
	1:  "View",
	2:  "View Group",
	3:  "Sensor",
	4:  "Regional Sea Surface",
	5:  "Regional Terrain Surface",
	6:  "Regional Layered Weather",
	7:  "Global Sea Surface",
	8:  "Global Terrain Surface",
	9:  "Global Layered Weather",
	10: "Atmosphere",
	11: "Celestial Sphere",
	12: "Event",
	13: "System",
	14: "Symbol Surface",
	15: "Symbol",
}

var articulatedPartEnableNames = EnumTable{
	0: "Disabled",
	1: "Enabled",
}

var coordinateSystemNames = EnumTable{
	0: "World/Parent",
	1: "Local",
}

var viewTypeNames = EnumTable{
	0: "General",
	1: "Visible",
	2: "Sensor",
	3: "Radar",
}

var mirrorModeNames = EnumTable{
	0: "None",
	1: "Horizontal",
	2: "Vertical",
	3: "Horizontal and Vertical",
}

var pixelReplicationNames = EnumTable{
	0: "None",
	1: "1x2",
	2: "2x1",
	3: "2x2",
}

var projectionTypeNames = EnumTable{
	0: "Perspective",
	1: "Orthographic Parallel",
}

var sensorOnOffNames = EnumTable{
	0: "Off",
	1: "On",
}

var polarityNames = EnumTable{
	0: "White Hot",
	1: "Black Hot",
}

var trackModeNames = EnumTable{
	0: "Off",
	1: "Force Correlate",
	2: "Scene",
	3: "Target",
	4: "Ship",
}

var trackPolarityNames = EnumTable{
	0: "Background",
	1: "Target",
}

var responseTypeNames = EnumTable{
	0: "Normal",
	1: "Extended",
}

var losRequestTypeNames = EnumTable{
	0: "Basic",
	1: "Extended",
}

var hatHotTypeNames = EnumTable{
	0: "HAT",
	1: "HOT",
	2: "Extended",
}

var coordinateSystemGeodeticNames = EnumTable{
	0: "Geodetic",
	1: "Entity",
}

var weatherScopeNames = EnumTable{
	0: "Global",
	1: "Regional",
	2: "Entity",
}

var weatherLayerNames = EnumTable{
	0:  "Ground Fog",
	1:  "Cloud Layer 1",
	2:  "Cloud Layer 2",
	3:  "Cloud Layer 3",
	4:  "Rain",
	5:  "Snow",
	6:  "Sleet",
	7:  "Hail",
	8:  "Sand",
	9:  "Dust",
	10: "Smoke",
}

var cloudTypeNames = EnumTable{
	0:  "None",
	1:  "Altocumulus",
	2:  "Altostratus",
	3:  "Cirrocumulus",
	4:  "Cirrostratus",
	5:  "Cirrus",
	6:  "Cumulonimbus",
	7:  "Cumulus",
	8:  "Nimbostratus",
	9:  "Stratocumulus",
	10: "Stratus",
}

var severityNames = EnumTable{
	0: "None",
	1: "Low",
	2: "Medium",
	3: "High",
}

var regionStateNames = EnumTable{
	0: "Inactive",
	1: "Active",
	2: "Destroyed",
}

var seaSurfaceConditionNames = EnumTable{
	0: "Calm (Glassy)",
	1: "Calm (Rippled)",
	2: "Smooth",
	3: "Slight",
	4: "Moderate",
	5: "Rough",
	6: "Very Rough",
	7: "High",
	8: "Very High",
	9: "Phenomenal",
}

var waveBreakerTypeNames = EnumTable{
	0: "Plunging",
	1: "Spilling",
	2: "Surging",
}

var earthModelNames = EnumTable{
	0: "WGS 84",
	1: "Host-Defined",
}

var boresightNames = EnumTable{
	0: "Off",
	1: "On",
}

var symbolSurfaceStateNames = EnumTable{
	0: "Active",
	1: "Destroyed",
}

var symbolAttachNames = EnumTable{
	0: "View",
	1: "Entity",
}

var symbolStateNames = EnumTable{
	0: "Hidden",
	1: "Visible",
	2: "Destroyed",
}

var symbolFlashControlNames = EnumTable{
	0: "Continue",
	1: "Reset",
}

var textAlignmentNames = EnumTable{
	0: "Top Left",
	1: "Top Center",
	2: "Top Right",
	3: "Center Left",
	4: "Center",
	5: "Center Right",
	6: "Bottom Left",
	7: "Bottom Center",
	8: "Bottom Right",
}

var textOrientationNames = EnumTable{
	0: "Left To Right",
	1: "Top To Bottom",
	2: "Right To Left",
	3: "Bottom To Top",
}

var fontNames = EnumTable{
	0: "IG Default",
	1: "Proportional Sans Serif",
	2: "Proportional Sans Serif Bold",
	3: "Proportional Sans Serif Italic",
	4: "Proportional Sans Serif Bold Italic",
	5: "Proportional Serif",
	6: "Proportional Serif Bold",
	7: "Proportional Serif Italic",
	8: "Proportional Serif Bold Italic",
	9: "Monospace Sans Serif",
	10: "Monospace Sans Serif Bold",
	11: "Monospace Sans Serif Italic",
	12: "Monospace Sans Serif Bold Italic",
	13: "Monospace Serif",
	14: "Monospace Serif Bold",
	15: "Monospace Serif Italic",
	16: "Monospace Serif Bold Italic",
}

var drawingStyleNames = EnumTable{
	0: "Line",
	1: "Fill",
}

var lineStyleNames = EnumTable{
	0: "Points",
	1: "Lines",
	2: "Line Strip",
	3: "Line Loop",
	4: "Triangles",
	5: "Triangle Strip",
	6: "Triangle Fan",
}

var cloneSourceNames = EnumTable{
	0: "Symbol",
	1: "Symbol Template",
}

var eventTypeNames = EnumTable{
	0: "Collision",
	1: "Animation Stop",
	2: "Environmental",
}

var validityNames = EnumTable{
	0: "Invalid",
	1: "Valid",
}

var successNames = EnumTable{
	0: "Failure",
	1: "Success",
}

var visibilityNames = EnumTable{
	0: "Occluded",
	1: "Visible",
}

var trajectoryStopNames = EnumTable{
	0: "Continue",
	1: "Terminate",
}

var specialEffectStateNames = EnumTable{
	0: "Stop",
	1: "Play",
	2: "Restart",
}

var effectSizingNames = EnumTable{
	0: "Programmed",
	1: "Scaled",
}

var timeOfDayValidNames = EnumTable{
	0: "Invalid",
	1: "Valid",
}
