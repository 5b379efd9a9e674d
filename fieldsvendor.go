// Copyright 2026 Tom Meltzer
// SPDX-License-Identifier: MIT

package rawmeta

// Vendor-private tag name tables. Tag ids and names follow the commonly
// documented MakerNote layouts; tags absent here still decode, under an
// UnknownTag_ key.

var canonFields = map[uint16]string{
	0x0001: "CanonCameraSettings",
	0x0002: "CanonFocalLength",
	0x0004: "CanonShotInfo",
	0x0006: "CanonImageType",
	0x0007: "CanonFirmwareVersion",
	0x0008: "FileNumber",
	0x0009: "OwnerName",
	0x000c: "SerialNumber",
	0x000d: "CanonCameraInfo",
	0x0010: "CanonModelID",
	0x0013: "ThumbnailImageValidArea",
	0x0026: "CanonAFInfo2",
	0x0093: "CanonFileInfo",
	0x0095: "LensModel",
	0x0096: "InternalSerialNumber",
	0x0097: "DustRemovalData",
	0x00a0: "ProcessingInfo",
	0x00b4: "ColorSpace",
	0x4001: "ColorData",
}

var nikonFields = map[uint16]string{
	0x0001: "MakerNoteVersion",
	0x0002: "ISO",
	0x0004: "Quality",
	0x0005: "WhiteBalance",
	0x0007: "FocusMode",
	0x0008: "FlashSetting",
	0x0009: "FlashType",
	0x000b: "WhiteBalanceFineTune",
	0x000c: "WB_RBLevels",
	0x000d: "ProgramShift",
	0x000e: "ExposureDifference",
	0x0011: "PreviewIFD",
	0x0012: "FlashExposureComp",
	0x0017: "ExternalFlashExposureComp",
	0x0018: "FlashExposureBracketValue",
	0x0019: "ExposureBracketValue",
	0x001b: "CropHiSpeed",
	0x001d: "SerialNumber",
	0x001e: "ColorSpace",
	0x0025: "ISOInfo",
	0x0083: "LensType",
	0x0084: "Lens",
	0x0087: "FlashMode",
	0x0088: "AFInfo",
	0x008b: "LensFStops",
	0x0093: "NEFCompression",
	0x0098: "LensData",
	0x00a7: "ShutterCount",
	0x00b0: "MultiExposure",
}

var sonyFields = map[uint16]string{
	0x0102: "Quality",
	0x0104: "FlashExposureComp",
	0x0105: "Teleconverter",
	0x0112: "WhiteBalanceFineTune",
	0x0115: "WhiteBalance",
	0x1000: "MultiBurstMode",
	0x2001: "PreviewImage",
	0x2009: "HighISONoiseReduction",
	0x200a: "AutoHDR",
	0xb020: "CreativeStyle",
	0xb040: "Macro",
	0xb041: "ExposureMode",
	0xb047: "Quality2",
	0xb049: "ReleaseMode",
	0xb04e: "FocusMode",
}

var olympusFields = map[uint16]string{
	0x0200: "SpecialMode",
	0x0201: "Quality",
	0x0202: "Macro",
	0x0204: "DigitalZoom",
	0x0207: "CameraType",
	0x0208: "TextInfo",
	0x0209: "CameraID",
	0x020b: "EpsonImageWidth",
	0x020c: "EpsonImageHeight",
	0x0404: "SerialNumber",
	0x1004: "FlashMode",
	0x1006: "Bracket",
	0x100b: "FocusMode",
	0x100c: "ManualFocusDistance",
	0x1017: "RedBalance",
	0x1018: "BlueBalance",
	0x2010: "Equipment",
	0x2020: "CameraSettings",
	0x2040: "ImageProcessing",
}

var fujiFields = map[uint16]string{
	0x0000: "Version",
	0x0010: "InternalSerialNumber",
	0x1000: "Quality",
	0x1001: "Sharpness",
	0x1002: "WhiteBalance",
	0x1003: "Saturation",
	0x1010: "FlashMode",
	0x1011: "FlashExposureComp",
	0x1020: "Macro",
	0x1021: "FocusMode",
	0x1030: "SlowSync",
	0x1031: "PictureMode",
	0x1100: "AutoBracketing",
	0x1300: "BlurWarning",
	0x1301: "FocusWarning",
	0x1302: "ExposureWarning",
	0x1400: "DynamicRange",
	0x1401: "FilmMode",
}

var panasonicFields = map[uint16]string{
	0x0001: "ImageQuality",
	0x0002: "FirmwareVersion",
	0x0003: "WhiteBalance",
	0x0007: "FocusMode",
	0x000f: "AFAreaMode",
	0x001a: "ImageStabilization",
	0x001c: "MacroMode",
	0x001f: "ShootingMode",
	0x0020: "Audio",
	0x0023: "WhiteBalanceBias",
	0x0024: "FlashBias",
	0x0025: "InternalSerialNumber",
	0x0026: "PanasonicExifVersion",
	0x0028: "ColorEffect",
	0x0033: "BabyAge",
	0x0051: "LensType",
	0x0052: "LensSerialNumber",
	0x0061: "FaceDetInfo",
}

var pentaxFields = map[uint16]string{
	0x0000: "PentaxVersion",
	0x0001: "PentaxModelType",
	0x0005: "PentaxModelID",
	0x0006: "Date",
	0x0007: "Time",
	0x0008: "Quality",
	0x000d: "FocusMode",
	0x0012: "ExposureTime",
	0x0013: "FNumber",
	0x0014: "ISO",
	0x0017: "MeteringMode",
	0x0019: "WhiteBalance",
	0x001d: "FocalLength",
	0x003f: "LensType",
	0x0229: "SerialNumber",
}

var kodakFields = map[uint16]string{
	0xfa02: "SceneMode",
	0xfa03: "WB_RGBLevels",
	0xfa19: "SerialNumber",
	0xfa1d: "KodakImageWidth",
	0xfa1e: "KodakImageHeight",
	0xfa20: "SensorWidth",
	0xfa21: "SensorHeight",
	0xfa23: "ISO",
	0xfa24: "FocalLength",
	0xfa25: "ExposureTime",
	0xfa26: "FNumber",
	0xfa27: "DateTimeOriginal",
	0xfa2d: "WhiteBalance",
	0xfa4e: "FirmwareVersion",
}

var leafFields = map[uint16]string{
	0x8000: "LeafData",
	0x8001: "CameraProfile",
	0x8002: "CameraName",
	0x8003: "LeafSerialNumber",
	0x8006: "CaptureSerial",
	0x800a: "CaptureProfile",
	0x8010: "ImageProfile",
	0x8021: "ShutterSpeed",
	0x8022: "Aperture",
	0x8030: "ColorMatrix",
}

var minoltaFields = map[uint16]string{
	0x0000: "MakerNoteVersion",
	0x0001: "MinoltaCameraSettingsOld",
	0x0003: "MinoltaCameraSettings",
	0x0040: "CompressedImageSize",
	0x0081: "PreviewImage",
	0x0102: "MinoltaQuality",
	0x0103: "MinoltaImageSize",
}
