// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package query

// 🗺️ fieldMap maps the user-facing filter keys to the RAPI field name for
// each collection. Collections absent from this map have no translatable
// filters. The table is static and never mutated after init.
var fieldMap = map[string]map[string]string{
	"COSMO-SkyMed1": {
		"ORBIT_DIRECTION": "Absolute Orbit",
		"PIXEL_SPACING":   "Spatial Resolution",
	},
	"DMC": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Incidence Angle",
	},
	"Gaofen-1": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
	},
	"GeoEye-1": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
		"SENSOR_MODE":     "Sensor Mode",
	},
	"IKONOS": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
		"SENSOR_MODE":     "Sensor Mode",
	},
	"IRS": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
		"SENSOR_MODE":     "Sensor Mode",
	},
	"NAPL": {
		"COLOUR":       "Sensor Mode",
		"SCALE":        "Scale",
		"ROLL":         "Roll Number",
		"PHOTO_NUMBER": "Photo Number",
	},
	"PlanetScope": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
	},
	"QuickBird-2": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
		"SENSOR_MODE":     "Sensor Mode",
	},
	"RCMImageProducts": {
		"ORBIT_DIRECTION":           "Orbit Direction",
		"PIXEL_SPACING":             "Spatial Resolution",
		"INCIDENCE_ANGLE":           "Incidence Angle",
		"BEAM_MNEMONIC":             "Beam Mnemonic",
		"BEAM_MODE_QUALIFIER":       "Beam Mode Qualifier",
		"DOWNLINK_SEGMENT_ID":       "Downlink Segment ID",
		"LUT_APPLIED":               "LUT Applied",
		"OPEN_DATA":                 "Open Data",
		"POLARIZATION":              "Polarization",
		"PRODUCT_FORMAT":            "Product Format",
		"PRODUCT_TYPE":              "Product Type",
		"RELATIVE_ORBIT":            "Relative Orbit",
		"WITHIN_ORBIT_TUBE":         "Within Orbit Tube",
		"ORDER_KEY":                 "Order Key",
		"SEQUENCE_ID":               "Sequence Id",
		"SPECIAL_HANDLING_REQUIRED": "Special Handling Required",
	},
	"RCMScienceData": {
		"ORBIT_DIRECTION":       "Orbit Direction",
		"INCIDENCE_ANGLE":       "Incidence Angle",
		"BEAM_MODE":             "Beam Mode Type",
		"BEAM_MNEMONIC":         "Beam Mnemonic",
		"TRANSMIT_POLARIZATION": "Transmit Polarization",
		"RECEIVE POLARIZATION":  "Receive Polarization",
		"DOWNLINK_SEGMENT_ID":   "Downlink Segment ID",
	},
	"Radarsat1": {
		"ORBIT_DIRECTION": "Orbit Direction",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Incidence Angle",
		"BEAM_MNEMONIC":   "Position",
		"ORBIT":           "Absolute Orbit",
	},
	"Radarsat1RawProducts": {
		"ORBIT_DIRECTION":    "Orbit Direction",
		"PIXEL_SPACING":      "Spatial Resolution",
		"INCIDENCE_ANGLE":    "Incidence Angle",
		"DATASET_ID":         "Dataset Id",
		"ARCHIVE_FACILITY":   "Reception Facility",
		"RECEPTION FACILITY": "Reception Facility",
		"BEAM_MODE":          "Sensor Mode",
		"BEAM_MNEMONIC":      "Position",
		"ABSOLUTE_ORBIT":     "Absolute Orbit",
	},
	"Radarsat2": {
		"ORBIT_DIRECTION":      "Orbit Direction",
		"PIXEL_SPACING":        "Spatial Resolution",
		"INCIDENCE_ANGLE":      "Incidence Angle",
		"SEQUENCE_ID":          "Sequence Id",
		"BEAM_MNEMONIC":        "Position",
		"LOOK_DIRECTION":       "Look Direction",
		"TRANSMIT_POLARIZATION": "Transmit Polarization",
		"RECEIVE_POLARIZATION": "Receive Polarization",
		"IMAGE_ID":             "Image Id",
		"RELATIVE_ORBIT":       "Relative Orbit",
		"ORDER_KEY":            "Order Key",
	},
	"Radarsat2RawProducts": {
		"ORBIT_DIRECTION":      "Orbit Direction",
		"PIXEL_SPACING":        "Spatial Resolution",
		"INCIDENCE_ANGLE":      "Incidence Angle",
		"LOOK_ORIENTATION":     "Look Orientation",
		"BEAM_MODE":            "Sensor Mode",
		"BEAM_MNEMONIC":        "Position",
		"TRANSMIT_POLARIZATION": "Transmit Polarization",
		"RECEIVE_POLARIZATION": "Receive Polarization",
		"IMAGE_ID":             "Image Id",
	},
	"RapidEye": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
		"SENSOR_MODE":     "Sensor Mode",
	},
	"SGBAirPhotos": {
		"SCALE":        "Scale",
		"ROLL_NUMBER":  "Roll Number",
		"PHOTO_NUMBER": "Photo Number",
		"AREA":         "Area",
	},
	"SPOT": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
	},
	"TerraSarX": {
		"ORBIT_DIRECTION": "Orbit Direction",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Incidence Angle",
	},
	"VASP": {
		"VASP_OPTIONS": "Sequence Id",
	},
	"WorldView-1": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
		"SENSOR_MODE":     "Sensor Mode",
	},
	"WorldView-2": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
		"SENSOR_MODE":     "Sensor Mode",
	},
	"WorldView-3": {
		"CLOUD_COVER":     "Cloud Cover",
		"PIXEL_SPACING":   "Spatial Resolution",
		"INCIDENCE_ANGLE": "Sensor Incidence Angle",
		"SENSOR_MODE":     "Sensor Mode",
	},
}

// 🔍 FieldsFor returns the filter key map for a collection, or nil if the
// collection has no translatable filters.
func FieldsFor(collectionID string) map[string]string {
	return fieldMap[collectionID]
}
