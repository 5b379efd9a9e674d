// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

// Tag ids that point at nested directories rather than leaf values.
const (
	tagExifIFDPointer    = 0x8769
	tagGPSInfoIFDPointer = 0x8825
	tagInteropIFDPointer = 0xa005
	tagSubIFDs           = 0x014a
	tagMakerNote         = 0x927c
	tagMakerNoteLeaf     = 0x83bb
)

var exifFields = map[uint16]string{
	0x0100: "ImageWidth",
	0x0101: "ImageHeight",
	0x0102: "BitsPerSample",
	0x0103: "Compression",
	0x0106: "PhotometricInterpretation",
	0x010e: "ImageDescription",
	0x010f: "Make",
	0x0110: "Model",
	0x0111: "StripOffsets",
	0x0112: "Orientation",
	0x0115: "SamplesPerPixel",
	0x0116: "RowsPerStrip",
	0x0117: "StripByteCounts",
	0x011a: "XResolution",
	0x011b: "YResolution",
	0x011c: "PlanarConfiguration",
	0x0128: "ResolutionUnit",
	0x0131: "Software",
	0x0132: "DateTime",
	0x013b: "Artist",
	0x013e: "WhitePoint",
	0x013f: "PrimaryChromaticities",
	0x0201: "ThumbnailOffset",
	0x0202: "ThumbnailLength",
	0x0211: "YCbCrCoefficients",
	0x0212: "YCbCrSubSampling",
	0x0213: "YCbCrPositioning",
	0x0214: "ReferenceBlackWhite",
	0x02bc: "ApplicationNotes",
	0x4746: "Rating",
	0x828d: "CFARepeatPatternDim",
	0x828e: "CFAPattern2",
	0x8298: "Copyright",
	0x829a: "ExposureTime",
	0x829d: "FNumber",
	0x8822: "ExposureProgram",
	0x8824: "SpectralSensitivity",
	0x8827: "ISO",
	0x8830: "SensitivityType",
	0x8832: "RecommendedExposureIndex",
	0x9000: "ExifVersion",
	0x9003: "DateTimeOriginal",
	0x9004: "CreateDate",
	0x9010: "OffsetTime",
	0x9011: "OffsetTimeOriginal",
	0x9101: "ComponentsConfiguration",
	0x9102: "CompressedBitsPerPixel",
	0x9201: "ShutterSpeedValue",
	0x9202: "ApertureValue",
	0x9203: "BrightnessValue",
	0x9204: "ExposureCompensation",
	0x9205: "MaxApertureValue",
	0x9206: "SubjectDistance",
	0x9207: "MeteringMode",
	0x9208: "LightSource",
	0x9209: "Flash",
	0x920a: "FocalLength",
	0x9214: "SubjectArea",
	0x9286: "UserComment",
	0x9290: "SubSecTime",
	0x9291: "SubSecTimeOriginal",
	0x9292: "SubSecTimeDigitized",
	0xa000: "FlashpixVersion",
	0xa001: "ColorSpace",
	0xa002: "ExifImageWidth",
	0xa003: "ExifImageHeight",
	0xa004: "RelatedSoundFile",
	0xa20b: "FlashEnergy",
	0xa20e: "FocalPlaneXResolution",
	0xa20f: "FocalPlaneYResolution",
	0xa210: "FocalPlaneResolutionUnit",
	0xa214: "SubjectLocation",
	0xa215: "ExposureIndex",
	0xa217: "SensingMethod",
	0xa300: "FileSource",
	0xa301: "SceneType",
	0xa302: "CFAPattern",
	0xa401: "CustomRendered",
	0xa402: "ExposureMode",
	0xa403: "WhiteBalance",
	0xa404: "DigitalZoomRatio",
	0xa405: "FocalLengthIn35mmFormat",
	0xa406: "SceneCaptureType",
	0xa407: "GainControl",
	0xa408: "Contrast",
	0xa409: "Saturation",
	0xa40a: "Sharpness",
	0xa40c: "SubjectDistanceRange",
	0xa420: "ImageUniqueID",
	0xa430: "OwnerName",
	0xa431: "SerialNumber",
	0xa432: "LensInfo",
	0xa433: "LensMake",
	0xa434: "LensModel",
	0xa435: "LensSerialNumber",
	0xc612: "DNGVersion",
	0xc614: "UniqueCameraModel",
	0xc620: "DefaultCropSize",
	0xc62f: "CameraSerialNumber",
	0xc65a: "CalibrationIlluminant1",
}

var gpsFields = map[uint16]string{
	0x0000: "VersionID",
	0x0001: "LatitudeRef",
	0x0002: "Latitude",
	0x0003: "LongitudeRef",
	0x0004: "Longitude",
	0x0005: "AltitudeRef",
	0x0006: "Altitude",
	0x0007: "TimeStamp",
	0x0008: "Satellites",
	0x0009: "Status",
	0x000a: "MeasureMode",
	0x000b: "DOP",
	0x000c: "SpeedRef",
	0x000d: "Speed",
	0x000e: "TrackRef",
	0x000f: "Track",
	0x0010: "ImgDirectionRef",
	0x0011: "ImgDirection",
	0x0012: "MapDatum",
	0x0013: "DestLatitudeRef",
	0x0014: "DestLatitude",
	0x0015: "DestLongitudeRef",
	0x0016: "DestLongitude",
	0x001b: "ProcessingMethod",
	0x001d: "DateStamp",
	0x001e: "Differential",
	0x001f: "HPositioningError",
}

var interopFields = map[uint16]string{
	0x0001: "InteropIndex",
	0x0002: "InteropVersion",
	0x1001: "RelatedImageWidth",
	0x1002: "RelatedImageHeight",
}
