package mediainfo

// Parameter names known to the catalog, by stream kind and value type.
// Names not listed are still queryable through Get; FieldOf treats them as
// text.
var catalogTables = map[StreamKind]catalogTable{
	StreamGeneral: {
		integer: []string{
			"Count", "Status", "StreamCount", "StreamKindID", "StreamKindPos", "StreamOrder",
			"FirstPacketOrder", "GeneralCount", "VideoCount", "AudioCount", "TextCount", "OtherCount",
			"ImageCount", "MenuCount", "Audio_Channels_Total", "FrameRate_Num", "FrameRate_Den",
			"FrameCount", "Delay", "StreamSize", "StreamSize_Demuxed", "HeaderSize", "DataSize",
			"FooterSize", "Season_Position", "Season_Position_Total", "Comic/Position_Total",
			"Part/Position", "Part/Position_Total", "Reel/Position", "Reel/Position_Total",
			"Track/Position", "Track/Position_Total", "Played_Count", "EPG_Positions_Begin",
			"EPG_Positions_End",
		},
		float: []string{
			"Duration", "Duration_Start", "Duration_End", "OverallBitRate", "OverallBitRate_Minimum",
			"OverallBitRate_Nominal", "OverallBitRate_Maximum", "FrameRate",
		},
		text: []string{
			"StreamKind", "StreamKind/String", "Inform", "ID", "ID/String", "OriginalSourceMedium_ID",
			"OriginalSourceMedium_ID/String", "UniqueID", "UniqueID/String", "MenuID", "MenuID/String",
			"Video_Format_List", "Video_Format_WithHint_List", "Video_Codec_List", "Video_Language_List",
			"Audio_Format_List", "Audio_Format_WithHint_List", "Audio_Codec_List", "Audio_Language_List",
			"Text_Format_List", "Text_Format_WithHint_List", "Text_Codec_List", "Text_Language_List",
			"Other_Format_List", "Other_Format_WithHint_List", "Other_Codec_List", "Other_Language_List",
			"Image_Format_List", "Image_Format_WithHint_List", "Image_Codec_List", "Image_Language_List",
			"Menu_Format_List", "Menu_Format_WithHint_List", "Menu_Codec_List", "Menu_Language_List",
			"CompleteName", "FolderName", "FileNameExtension", "FileName", "FileExtension",
			"CompleteName_Last", "FolderName_Last", "FileNameExtension_Last", "FileName_Last",
			"FileExtension_Last", "Format", "Format/String", "Format/Info", "Format/Url",
			"Format/Extensions", "Format_Commercial", "Format_Commercial_IfAny", "Format_Version",
			"Format_Profile", "Format_Level", "Format_Compression", "Format_Settings",
			"Format_AdditionalFeatures", "InternetMediaType", "CodecID", "CodecID/String", "CodecID/Info",
			"CodecID/Hint", "CodecID/Url", "CodecID_Description", "CodecID_Version", "CodecID_Compatible",
			"Interleaved", "Codec", "Codec/String", "Codec/Info", "Codec/Url", "Codec/Extensions",
			"Codec_Settings", "Codec_Settings_Automatic", "FileSize", "FileSize/String", "FileSize/String1",
			"FileSize/String2", "FileSize/String3", "FileSize/String4", "Duration/String",
			"Duration/String1", "Duration/String2", "Duration/String3", "Duration/String4",
			"Duration/String5", "Duration_Start/String", "Duration_Start/String1", "Duration_Start/String2",
			"Duration_Start/String3", "Duration_Start/String4", "Duration_Start/String5",
			"Duration_End/String", "Duration_End/String1", "Duration_End/String2", "Duration_End/String3",
			"Duration_End/String4", "Duration_End/String5", "OverallBitRate_Mode",
			"OverallBitRate_Mode/String", "OverallBitRate/String", "OverallBitRate_Minimum/String",
			"OverallBitRate_Nominal/String", "OverallBitRate_Maximum/String", "FrameRate/String",
			"Delay/String", "Delay/String1", "Delay/String2", "Delay/String3", "Delay/String4",
			"Delay/String5", "Delay_Settings", "Delay_DropFrame", "Delay_Source", "Delay_Source/String",
			"StreamSize/String", "StreamSize/String1", "StreamSize/String2", "StreamSize/String3",
			"StreamSize/String4", "StreamSize/String5", "StreamSize_Proportion",
			"StreamSize_Demuxed/String", "StreamSize_Demuxed/String1", "StreamSize_Demuxed/String2",
			"StreamSize_Demuxed/String3", "StreamSize_Demuxed/String4", "StreamSize_Demuxed/String5",
			"IsStreamable", "Album_ReplayGain_Gain", "Album_ReplayGain_Gain/String",
			"Album_ReplayGain_Peak", "Encryption", "Encryption_Format", "Encryption_Length",
			"Encryption_Method", "Encryption_Mode", "Encryption_Padding", "Encryption_InitializationVector",
			"UniversalAdID/String", "UniversalAdID_Registry", "UniversalAdID_Value", "Title", "Title_More",
			"Title/Url", "Domain", "Collection", "Season", "Movie", "Movie_More", "Movie/Country",
			"Movie/Url", "Album", "Album_More", "Album/Sort", "Album/Performer", "Album/Performer/Sort",
			"Album/Performer/Url", "Comic", "Comic_More", "Part", "Reel", "Track", "Track_More",
			"Track/Url", "Track/Sort", "PackageName", "Grouping", "Chapter", "SubTrack", "Original/Album",
			"Original/Movie", "Original/Part", "Original/Track", "Compilation", "Compilation/String",
			"Performer", "Performer/Sort", "Performer/Url", "Original/Performer", "Accompaniment",
			"Composer", "Composer/Nationality", "Composer/Sort", "Arranger", "Lyricist",
			"Original/Lyricist", "Conductor", "Director", "CoDirector", "AssistantDirector",
			"DirectorOfPhotography", "SoundEngineer", "ArtDirector", "ProductionDesigner", "Choreographer",
			"CostumeDesigner", "Actor", "Actor_Character", "WrittenBy", "ScreenplayBy", "EditedBy",
			"CommissionedBy", "Producer", "CoProducer", "ExecutiveProducer", "MusicBy", "DistributedBy",
			"OriginalSourceForm/DistributedBy", "MasteredBy", "EncodedBy", "RemixedBy", "ProductionStudio",
			"ThanksTo", "Publisher", "Publisher/URL", "Label", "Genre", "PodcastCategory", "Mood",
			"ContentType", "Subject", "Description", "Keywords", "Summary", "Synopsis", "Period",
			"LawRating", "LawRating_Reason", "ICRA", "Released_Date", "Original/Released_Date",
			"Recorded_Date", "Encoded_Date", "Tagged_Date", "Written_Date", "Mastered_Date",
			"File_Created_Date", "File_Created_Date_Local", "File_Modified_Date",
			"File_Modified_Date_Local", "Recorded_Location", "Written_Location", "Archival_Location",
			"Encoded_Application", "Encoded_Application/String", "Encoded_Application_CompanyName",
			"Encoded_Application_Name", "Encoded_Application_Version", "Encoded_Application_Url",
			"Encoded_Library", "Encoded_Library/String", "Encoded_Library_CompanyName",
			"Encoded_Library_Name", "Encoded_Library_Version", "Encoded_Library_Date",
			"Encoded_Library_Settings", "Encoded_OperatingSystem", "Cropped", "Dimensions", "DotsPerInch",
			"Lightness", "OriginalSourceMedium", "OriginalSourceForm", "OriginalSourceForm/NumColors",
			"OriginalSourceForm/Name", "OriginalSourceForm/Cropped", "OriginalSourceForm/Sharpness",
			"Tagged_Application", "BPM", "ISRC", "ISBN", "ISAN", "BarCode", "LCCN", "UMID", "CatalogNumber",
			"LabelCode", "Owner", "Copyright", "Copyright/Url", "Producer_Copyright", "TermsOfUse",
			"ServiceName", "ServiceChannel", "Service/Url", "ServiceProvider", "ServiceProvider/Url",
			"ServiceType", "NetworkName", "OriginalNetworkName", "Country", "TimeZone", "Cover",
			"Cover_Description", "Cover_Type", "Cover_Mime", "Cover_Data", "Lyrics", "Comment", "Rating",
			"Added_Date", "Played_First_Date", "Played_Last_Date",
		},
	},
	StreamVideo: {
		integer: []string{
			"Count", "Status", "StreamCount", "StreamKindID", "StreamKindPos", "StreamOrder",
			"FirstPacketOrder", "Format_Settings_GMC", "Format_Settings_RefFrames", "Width", "Width_Offset",
			"Width_Original", "Width_CleanAperture", "Height", "Height_Offset", "Height_Original",
			"Height_CleanAperture", "Stored_Width", "Stored_Height", "Sampled_Width", "Sampled_Height",
			"FrameRate_Num", "FrameRate_Den", "FrameCount", "Source_FrameCount", "Resolution", "BitDepth",
			"Delay_Original", "StreamSize", "StreamSize_Demuxed", "Source_StreamSize", "StreamSize_Encoded",
			"Source_StreamSize_Encoded",
		},
		float: []string{
			"Duration", "Duration_FirstFrame", "Duration_LastFrame", "Source_Duration",
			"Source_Duration_FirstFrame", "Source_Duration_LastFrame", "BitRate", "BitRate_Minimum",
			"BitRate_Nominal", "BitRate_Maximum", "BitRate_Encoded", "PixelAspectRatio",
			"PixelAspectRatio_Original", "PixelAspectRatio_CleanAperture", "DisplayAspectRatio",
			"DisplayAspectRatio_Original", "DisplayAspectRatio_CleanAperture", "FrameRate",
			"FrameRate_Minimum", "FrameRate_Nominal", "FrameRate_Maximum", "FrameRate_Original",
			"FrameRate_Original_Num", "FrameRate_Original_Den", "FrameRate_Real", "Compression_Ratio",
			"Bits-(Pixel*Frame)", "Delay", "TimeStamp_FirstFrame",
		},
		text: []string{
			"StreamKind", "StreamKind/String", "Inform", "ID", "ID/String", "OriginalSourceMedium_ID",
			"OriginalSourceMedium_ID/String", "UniqueID", "UniqueID/String", "MenuID", "MenuID/String",
			"Format", "Format/String", "Format/Info", "Format/Url", "Format_Commercial",
			"Format_Commercial_IfAny", "Format_Version", "Format_Profile", "Format_Level", "Format_Tier",
			"Format_Compression", "Format_AdditionalFeatures", "MultiView_BaseProfile", "MultiView_Count",
			"MultiView_Layout", "HDR_Format", "HDR_Format/String", "HDR_Format_Commercial",
			"HDR_Format_Version", "HDR_Format_Profile", "HDR_Format_Level", "HDR_Format_Settings",
			"HDR_Format_Compatibility", "Format_Settings", "Format_Settings_BVOP",
			"Format_Settings_BVOP/String", "Format_Settings_QPel", "Format_Settings_QPel/String",
			"Format_Settings_GMC/String", "Format_Settings_Matrix", "Format_Settings_Matrix/String",
			"Format_Settings_Matrix_Data", "Format_Settings_CABAC", "Format_Settings_CABAC/String",
			"Format_Settings_RefFrames/String", "Format_Settings_Pulldown", "Format_Settings_Endianness",
			"Format_Settings_Packing", "Format_Settings_FrameMode", "Format_Settings_GOP",
			"Format_Settings_PictureStructure", "Format_Settings_Wrapping", "InternetMediaType",
			"MuxingMode", "CodecID", "CodecID/String", "CodecID/Info", "CodecID/Hint", "CodecID/Url",
			"CodecID_Description", "Codec", "Codec/String", "Codec/Family", "Codec/Info", "Codec/Url",
			"Codec/CC", "Codec_Profile", "Codec_Description", "Codec_Settings",
			"Codec_Settings_PacketBitStream", "Codec_Settings_BVOP", "Codec_Settings_QPel",
			"Codec_Settings_GMC", "Codec_Settings_GMC/String", "Codec_Settings_Matrix",
			"Codec_Settings_Matrix_Data", "Codec_Settings_CABAC", "Codec_Settings_RefFrames",
			"Duration/String", "Duration/String1", "Duration/String2", "Duration/String3",
			"Duration/String4", "Duration/String5", "Duration_FirstFrame/String",
			"Duration_FirstFrame/String1", "Duration_FirstFrame/String2", "Duration_FirstFrame/String3",
			"Duration_FirstFrame/String4", "Duration_FirstFrame/String5", "Duration_LastFrame/String",
			"Duration_LastFrame/String1", "Duration_LastFrame/String2", "Duration_LastFrame/String3",
			"Duration_LastFrame/String4", "Duration_LastFrame/String5", "Source_Duration/String",
			"Source_Duration/String1", "Source_Duration/String2", "Source_Duration/String3",
			"Source_Duration/String4", "Source_Duration/String5", "Source_Duration_FirstFrame/String",
			"Source_Duration_FirstFrame/String1", "Source_Duration_FirstFrame/String2",
			"Source_Duration_FirstFrame/String3", "Source_Duration_FirstFrame/String4",
			"Source_Duration_FirstFrame/String5", "Source_Duration_LastFrame/String",
			"Source_Duration_LastFrame/String1", "Source_Duration_LastFrame/String2",
			"Source_Duration_LastFrame/String3", "Source_Duration_LastFrame/String4",
			"Source_Duration_LastFrame/String5", "BitRate_Mode", "BitRate_Mode/String", "BitRate/String",
			"BitRate_Minimum/String", "BitRate_Nominal/String", "BitRate_Maximum/String",
			"BitRate_Encoded/String", "Width/String", "Width_Offset/String", "Width_Original/String",
			"Width_CleanAperture/String", "Height/String", "Height_Offset/String", "Height_Original/String",
			"Height_CleanAperture/String", "PixelAspectRatio/String", "PixelAspectRatio_Original/String",
			"PixelAspectRatio_CleanAperture/String", "DisplayAspectRatio/String",
			"DisplayAspectRatio_Original/String", "DisplayAspectRatio_CleanAperture/String",
			"ActiveFormatDescription", "ActiveFormatDescription/String",
			"ActiveFormatDescription_MuxingMode", "Rotation", "Rotation/String", "FrameRate_Mode",
			"FrameRate_Mode/String", "FrameRate_Mode_Original", "FrameRate_Mode_Original/String",
			"FrameRate/String", "FrameRate_Minimum/String", "FrameRate_Nominal/String",
			"FrameRate_Maximum/String", "FrameRate_Original/String", "FrameRate_Real/String", "Standard",
			"Resolution/String", "Colorimetry", "ColorSpace", "ChromaSubsampling",
			"ChromaSubsampling/String", "ChromaSubsampling_Position", "BitDepth/String", "ScanType",
			"ScanType/String", "ScanType_Original", "ScanType_Original/String", "ScanType_StoreMethod",
			"ScanType_StoreMethod_FieldsPerBlock", "ScanType_StoreMethod/String", "ScanOrder",
			"ScanOrder/String", "ScanOrder_Stored", "ScanOrder_Stored/String",
			"ScanOrder_StoredDisplayedInverted", "ScanOrder_Original", "ScanOrder_Original/String",
			"Interlacement", "Interlacement/String", "Compression_Mode", "Compression_Mode/String",
			"Delay/String", "Delay/String1", "Delay/String2", "Delay/String3", "Delay/String4",
			"Delay/String5", "Delay_Settings", "Delay_DropFrame", "Delay_Source", "Delay_Source/String",
			"Delay_Original/String", "Delay_Original/String1", "Delay_Original/String2",
			"Delay_Original/String3", "Delay_Original/String4", "Delay_Original/String5",
			"Delay_Original_Settings", "Delay_Original_DropFrame", "Delay_Original_Source",
			"TimeStamp_FirstFrame/String", "TimeStamp_FirstFrame/String1", "TimeStamp_FirstFrame/String2",
			"TimeStamp_FirstFrame/String3", "TimeStamp_FirstFrame/String4", "TimeStamp_FirstFrame/String5",
			"TimeCode_FirstFrame", "TimeCode_LastFrame", "TimeCode_DropFrame", "TimeCode_Settings",
			"TimeCode_Source", "Gop_OpenClosed", "Gop_OpenClosed/String", "Gop_OpenClosed_FirstFrame",
			"Gop_OpenClosed_FirstFrame/String", "StreamSize/String", "StreamSize/String1",
			"StreamSize/String2", "StreamSize/String3", "StreamSize/String4", "StreamSize/String5",
			"StreamSize_Proportion", "StreamSize_Demuxed/String", "StreamSize_Demuxed/String1",
			"StreamSize_Demuxed/String2", "StreamSize_Demuxed/String3", "StreamSize_Demuxed/String4",
			"StreamSize_Demuxed/String5", "Source_StreamSize/String", "Source_StreamSize/String1",
			"Source_StreamSize/String2", "Source_StreamSize/String3", "Source_StreamSize/String4",
			"Source_StreamSize/String5", "Source_StreamSize_Proportion", "StreamSize_Encoded/String",
			"StreamSize_Encoded/String1", "StreamSize_Encoded/String2", "StreamSize_Encoded/String3",
			"StreamSize_Encoded/String4", "StreamSize_Encoded/String5", "StreamSize_Encoded_Proportion",
			"Source_StreamSize_Encoded/String", "Source_StreamSize_Encoded/String1",
			"Source_StreamSize_Encoded/String2", "Source_StreamSize_Encoded/String3",
			"Source_StreamSize_Encoded/String4", "Source_StreamSize_Encoded/String5",
			"Source_StreamSize_Encoded_Proportion", "Alignment", "Alignment/String", "Title",
			"Encoded_Application", "Encoded_Application/String", "Encoded_Application_CompanyName",
			"Encoded_Application_Name", "Encoded_Application_Version", "Encoded_Application_Url",
			"Encoded_Library", "Encoded_Library/String", "Encoded_Library_CompanyName",
			"Encoded_Library_Name", "Encoded_Library_Version", "Encoded_Library_Date",
			"Encoded_Library_Settings", "Encoded_OperatingSystem", "Language", "Language/String",
			"Language/String1", "Language/String2", "Language/String3", "Language/String4", "Language_More",
			"ServiceKind", "ServiceKind/String", "Disabled", "Disabled/String", "Default", "Default/String",
			"Forced", "Forced/String", "AlternateGroup", "AlternateGroup/String", "Encoded_Date",
			"Tagged_Date", "Encryption", "BufferSize", "colour_description_present",
			"colour_description_present_Source", "colour_description_present_Original",
			"colour_description_present_Original_Source", "colour_range", "colour_range_Source",
			"colour_range_Original", "colour_range_Original_Source", "colour_primaries",
			"colour_primaries_Source", "colour_primaries_Original", "colour_primaries_Original_Source",
			"transfer_characteristics", "transfer_characteristics_Source",
			"transfer_characteristics_Original", "transfer_characteristics_Original_Source",
			"matrix_coefficients", "matrix_coefficients_Source", "matrix_coefficients_Original",
			"matrix_coefficients_Original_Source", "MasteringDisplay_ColorPrimaries",
			"MasteringDisplay_ColorPrimaries_Source", "MasteringDisplay_ColorPrimaries_Original",
			"MasteringDisplay_ColorPrimaries_Original_Source", "MasteringDisplay_Luminance",
			"MasteringDisplay_Luminance_Source", "MasteringDisplay_Luminance_Original",
			"MasteringDisplay_Luminance_Original_Source", "MaxCLL", "MaxCLL_Source", "MaxCLL_Original",
			"MaxCLL_Original_Source", "MaxFALL", "MaxFALL_Source", "MaxFALL_Original",
			"MaxFALL_Original_Source",
		},
	},
	StreamAudio: {
		integer: []string{
			"Count", "Status", "StreamCount", "StreamKindID", "StreamKindPos", "StreamOrder",
			"FirstPacketOrder", "Channel(s)", "Channel(s)_Original", "Matrix_Channel(s)", "SamplingCount",
			"Source_SamplingCount", "FrameRate_Num", "FrameRate_Den", "FrameCount", "Source_FrameCount",
			"Resolution", "BitDepth", "BitDepth_Detected", "BitDepth_Stored", "Delay_Original",
			"Video0_Delay", "StreamSize", "StreamSize_Demuxed", "Source_StreamSize", "StreamSize_Encoded",
			"Source_StreamSize_Encoded",
		},
		float: []string{
			"Duration", "Duration_FirstFrame", "Duration_LastFrame", "Source_Duration",
			"Source_Duration_FirstFrame", "Source_Duration_LastFrame", "BitRate", "BitRate_Minimum",
			"BitRate_Nominal", "BitRate_Maximum", "BitRate_Encoded", "SamplesPerFrame", "SamplingRate",
			"FrameRate", "Compression_Ratio", "Delay", "Video_Delay", "Interleave_VideoFrames",
			"Interleave_Duration", "Interleave_Preload",
		},
		text: []string{
			"StreamKind", "StreamKind/String", "Inform", "ID", "ID/String", "OriginalSourceMedium_ID",
			"OriginalSourceMedium_ID/String", "UniqueID", "UniqueID/String", "MenuID", "MenuID/String",
			"Format", "Format/String", "Format/Info", "Format/Url", "Format_Commercial",
			"Format_Commercial_IfAny", "Format_Version", "Format_Profile", "Format_Level",
			"Format_Compression", "Format_Settings", "Format_Settings_SBR", "Format_Settings_SBR/String",
			"Format_Settings_PS", "Format_Settings_PS/String", "Format_Settings_Mode",
			"Format_Settings_ModeExtension", "Format_Settings_Emphasis", "Format_Settings_Floor",
			"Format_Settings_Firm", "Format_Settings_Endianness", "Format_Settings_Sign",
			"Format_Settings_Law", "Format_Settings_ITU", "Format_Settings_Wrapping",
			"Format_AdditionalFeatures", "Matrix_Format", "InternetMediaType", "MuxingMode",
			"MuxingMode_MoreInfo", "CodecID", "CodecID/String", "CodecID/Info", "CodecID/Hint",
			"CodecID/Url", "CodecID_Description", "Codec", "Codec/String", "Codec/Family", "Codec/Info",
			"Codec/Url", "Codec/CC", "Codec_Description", "Codec_Profile", "Codec_Settings",
			"Codec_Settings_Automatic", "Codec_Settings_Floor", "Codec_Settings_Firm",
			"Codec_Settings_Endianness", "Codec_Settings_Sign", "Codec_Settings_Law", "Codec_Settings_ITU",
			"Duration/String", "Duration/String1", "Duration/String2", "Duration/String3",
			"Duration/String4", "Duration/String5", "Duration_FirstFrame/String",
			"Duration_FirstFrame/String1", "Duration_FirstFrame/String2", "Duration_FirstFrame/String3",
			"Duration_FirstFrame/String4", "Duration_FirstFrame/String5", "Duration_LastFrame/String",
			"Duration_LastFrame/String1", "Duration_LastFrame/String2", "Duration_LastFrame/String3",
			"Duration_LastFrame/String4", "Duration_LastFrame/String5", "Source_Duration/String",
			"Source_Duration/String1", "Source_Duration/String2", "Source_Duration/String3",
			"Source_Duration/String4", "Source_Duration/String5", "Source_Duration_FirstFrame/String",
			"Source_Duration_FirstFrame/String1", "Source_Duration_FirstFrame/String2",
			"Source_Duration_FirstFrame/String3", "Source_Duration_FirstFrame/String4",
			"Source_Duration_FirstFrame/String5", "Source_Duration_LastFrame/String",
			"Source_Duration_LastFrame/String1", "Source_Duration_LastFrame/String2",
			"Source_Duration_LastFrame/String3", "Source_Duration_LastFrame/String4",
			"Source_Duration_LastFrame/String5", "BitRate_Mode", "BitRate_Mode/String", "BitRate/String",
			"BitRate_Minimum/String", "BitRate_Nominal/String", "BitRate_Maximum/String",
			"BitRate_Encoded/String", "Channel(s)/String", "Channel(s)_Original/String",
			"Matrix_Channel(s)/String", "ChannelPositions", "ChannelPositions_Original",
			"ChannelPositions/String2", "ChannelPositions_Original/String2", "Matrix_ChannelPositions",
			"Matrix_ChannelPositions/String2", "ChannelLayout", "ChannelLayout_Original", "ChannelLayoutID",
			"SamplingRate/String", "FrameRate/String", "Resolution/String", "BitDepth/String",
			"BitDepth_Detected/String", "BitDepth_Stored/String", "Compression_Mode",
			"Compression_Mode/String", "Delay/String", "Delay/String1", "Delay/String2", "Delay/String3",
			"Delay/String4", "Delay/String5", "Delay_Settings", "Delay_DropFrame", "Delay_Source",
			"Delay_Source/String", "Delay_Original/String", "Delay_Original/String1",
			"Delay_Original/String2", "Delay_Original/String3", "Delay_Original/String4",
			"Delay_Original/String5", "Delay_Original_Settings", "Delay_Original_DropFrame",
			"Delay_Original_Source", "Video_Delay/String", "Video_Delay/String1", "Video_Delay/String2",
			"Video_Delay/String3", "Video_Delay/String4", "Video_Delay/String5", "Video0_Delay/String",
			"Video0_Delay/String1", "Video0_Delay/String2", "Video0_Delay/String3", "Video0_Delay/String4",
			"Video0_Delay/String5", "TimeCode_FirstFrame", "TimeCode_LastFrame", "TimeCode_DropFrame",
			"TimeCode_Settings", "TimeCode_Source", "ReplayGain_Gain", "ReplayGain_Gain/String",
			"ReplayGain_Peak", "StreamSize/String", "StreamSize/String1", "StreamSize/String2",
			"StreamSize/String3", "StreamSize/String4", "StreamSize/String5", "StreamSize_Proportion",
			"StreamSize_Demuxed/String", "StreamSize_Demuxed/String1", "StreamSize_Demuxed/String2",
			"StreamSize_Demuxed/String3", "StreamSize_Demuxed/String4", "StreamSize_Demuxed/String5",
			"Source_StreamSize/String", "Source_StreamSize/String1", "Source_StreamSize/String2",
			"Source_StreamSize/String3", "Source_StreamSize/String4", "Source_StreamSize/String5",
			"Source_StreamSize_Proportion", "StreamSize_Encoded/String", "StreamSize_Encoded/String1",
			"StreamSize_Encoded/String2", "StreamSize_Encoded/String3", "StreamSize_Encoded/String4",
			"StreamSize_Encoded/String5", "StreamSize_Encoded_Proportion",
			"Source_StreamSize_Encoded/String", "Source_StreamSize_Encoded/String1",
			"Source_StreamSize_Encoded/String2", "Source_StreamSize_Encoded/String3",
			"Source_StreamSize_Encoded/String4", "Source_StreamSize_Encoded/String5",
			"Source_StreamSize_Encoded_Proportion", "Alignment", "Alignment/String",
			"Interleave_Duration/String", "Interleave_Preload/String", "Title", "Encoded_Application",
			"Encoded_Application/String", "Encoded_Application_CompanyName", "Encoded_Application_Name",
			"Encoded_Application_Version", "Encoded_Application_Url", "Encoded_Library",
			"Encoded_Library/String", "Encoded_Library_CompanyName", "Encoded_Library_Name",
			"Encoded_Library_Version", "Encoded_Library_Date", "Encoded_Library_Settings",
			"Encoded_OperatingSystem", "Language", "Language/String", "Language/String1",
			"Language/String2", "Language/String3", "Language/String4", "Language_More", "ServiceKind",
			"ServiceKind/String", "Disabled", "Disabled/String", "Default", "Default/String", "Forced",
			"Forced/String", "AlternateGroup", "AlternateGroup/String", "Encoded_Date", "Tagged_Date",
			"Encryption",
		},
	},
	StreamText: {
		integer: []string{
			"Count", "Status", "StreamCount", "StreamKindID", "StreamKindPos", "StreamOrder",
			"FirstPacketOrder", "Width", "Height", "FrameRate_Num", "FrameRate_Den", "FrameCount",
			"ElementCount", "Source_FrameCount", "Resolution", "BitDepth", "Delay_Original", "Video0_Delay",
			"StreamSize", "StreamSize_Demuxed", "Source_StreamSize", "StreamSize_Encoded",
			"Source_StreamSize_Encoded",
		},
		float: []string{
			"Duration", "Duration_Start2End", "Duration_Start_Command", "Duration_Start", "Duration_End",
			"Duration_End_Command", "Duration_FirstFrame", "Duration_LastFrame", "Source_Duration",
			"Source_Duration_FirstFrame", "Source_Duration_LastFrame", "BitRate", "BitRate_Minimum",
			"BitRate_Nominal", "BitRate_Maximum", "BitRate_Encoded", "DisplayAspectRatio",
			"DisplayAspectRatio_Original", "FrameRate", "FrameRate_Minimum", "FrameRate_Nominal",
			"FrameRate_Maximum", "FrameRate_Original", "FrameRate_Original_Num", "FrameRate_Original_Den",
			"Compression_Ratio", "Delay", "Video_Delay", "Events_MinDuration",
		},
		text: []string{
			"StreamKind", "StreamKind/String", "Inform", "ID", "ID/String", "OriginalSourceMedium_ID",
			"OriginalSourceMedium_ID/String", "UniqueID", "UniqueID/String", "MenuID", "MenuID/String",
			"Format", "Format/String", "Format/Info", "Format/Url", "Format_Commercial",
			"Format_Commercial_IfAny", "Format_Version", "Format_Profile", "Format_Compression",
			"Format_Settings", "Format_Settings_Wrapping", "Format_AdditionalFeatures", "InternetMediaType",
			"MuxingMode", "MuxingMode_MoreInfo", "CodecID", "CodecID/String", "CodecID/Info",
			"CodecID/Hint", "CodecID/Url", "CodecID_Description", "Codec", "Codec/String", "Codec/Info",
			"Codec/Url", "Codec/CC", "Duration/String", "Duration/String1", "Duration/String2",
			"Duration/String3", "Duration/String4", "Duration/String5", "Duration_Start2End/String",
			"Duration_Start2End/String1", "Duration_Start2End/String2", "Duration_Start2End/String3",
			"Duration_Start2End/String4", "Duration_Start2End/String5", "Duration_Start_Command/String",
			"Duration_Start_Command/String1", "Duration_Start_Command/String2",
			"Duration_Start_Command/String3", "Duration_Start_Command/String4",
			"Duration_Start_Command/String5", "Duration_Start/String", "Duration_Start/String1",
			"Duration_Start/String2", "Duration_Start/String3", "Duration_Start/String4",
			"Duration_Start/String5", "Duration_End/String", "Duration_End/String1", "Duration_End/String2",
			"Duration_End/String3", "Duration_End/String4", "Duration_End/String5",
			"Duration_End_Command/String", "Duration_End_Command/String1", "Duration_End_Command/String2",
			"Duration_End_Command/String3", "Duration_End_Command/String4", "Duration_End_Command/String5",
			"Duration_FirstFrame/String", "Duration_FirstFrame/String1", "Duration_FirstFrame/String2",
			"Duration_FirstFrame/String3", "Duration_FirstFrame/String4", "Duration_FirstFrame/String5",
			"Duration_LastFrame/String", "Duration_LastFrame/String1", "Duration_LastFrame/String2",
			"Duration_LastFrame/String3", "Duration_LastFrame/String4", "Duration_LastFrame/String5",
			"Duration_Base", "Source_Duration/String", "Source_Duration/String1", "Source_Duration/String2",
			"Source_Duration/String3", "Source_Duration/String4", "Source_Duration/String5",
			"Source_Duration_FirstFrame/String", "Source_Duration_FirstFrame/String1",
			"Source_Duration_FirstFrame/String2", "Source_Duration_FirstFrame/String3",
			"Source_Duration_FirstFrame/String4", "Source_Duration_FirstFrame/String5",
			"Source_Duration_LastFrame/String", "Source_Duration_LastFrame/String1",
			"Source_Duration_LastFrame/String2", "Source_Duration_LastFrame/String3",
			"Source_Duration_LastFrame/String4", "Source_Duration_LastFrame/String5", "BitRate_Mode",
			"BitRate_Mode/String", "BitRate/String", "BitRate_Minimum/String", "BitRate_Nominal/String",
			"BitRate_Maximum/String", "BitRate_Encoded/String", "Width/String", "Height/String",
			"DisplayAspectRatio/String", "DisplayAspectRatio_Original/String", "FrameRate_Mode",
			"FrameRate_Mode/String", "FrameRate_Mode_Original", "FrameRate_Mode_Original/String",
			"FrameRate/String", "FrameRate_Minimum/String", "FrameRate_Nominal/String",
			"FrameRate_Maximum/String", "FrameRate_Original/String", "ColorSpace", "ChromaSubsampling",
			"Resolution/String", "BitDepth/String", "Compression_Mode", "Compression_Mode/String",
			"Delay/String", "Delay/String1", "Delay/String2", "Delay/String3", "Delay/String4",
			"Delay/String5", "Delay_Settings", "Delay_DropFrame", "Delay_Source", "Delay_Source/String",
			"Delay_Original/String", "Delay_Original/String1", "Delay_Original/String2",
			"Delay_Original/String3", "Delay_Original/String4", "Delay_Original/String5",
			"Delay_Original_Settings", "Delay_Original_DropFrame", "Delay_Original_Source",
			"Video_Delay/String", "Video_Delay/String1", "Video_Delay/String2", "Video_Delay/String3",
			"Video_Delay/String4", "Video_Delay/String5", "Video0_Delay/String", "Video0_Delay/String1",
			"Video0_Delay/String2", "Video0_Delay/String3", "Video0_Delay/String4", "Video0_Delay/String5",
			"TimeCode_FirstFrame", "TimeCode_LastFrame", "TimeCode_DropFrame", "TimeCode_Settings",
			"TimeCode_Source", "TimeCode_MaxFrameNumber", "TimeCode_MaxFrameNumber_Theory",
			"StreamSize/String", "StreamSize/String1", "StreamSize/String2", "StreamSize/String3",
			"StreamSize/String4", "StreamSize/String5", "StreamSize_Proportion",
			"StreamSize_Demuxed/String", "StreamSize_Demuxed/String1", "StreamSize_Demuxed/String2",
			"StreamSize_Demuxed/String3", "StreamSize_Demuxed/String4", "StreamSize_Demuxed/String5",
			"Source_StreamSize/String", "Source_StreamSize/String1", "Source_StreamSize/String2",
			"Source_StreamSize/String3", "Source_StreamSize/String4", "Source_StreamSize/String5",
			"Source_StreamSize_Proportion", "StreamSize_Encoded/String", "StreamSize_Encoded/String1",
			"StreamSize_Encoded/String2", "StreamSize_Encoded/String3", "StreamSize_Encoded/String4",
			"StreamSize_Encoded/String5", "StreamSize_Encoded_Proportion",
			"Source_StreamSize_Encoded/String", "Source_StreamSize_Encoded/String1",
			"Source_StreamSize_Encoded/String2", "Source_StreamSize_Encoded/String3",
			"Source_StreamSize_Encoded/String4", "Source_StreamSize_Encoded/String5",
			"Source_StreamSize_Encoded_Proportion", "Title", "Encoded_Application",
			"Encoded_Application/String", "Encoded_Application_CompanyName", "Encoded_Application_Name",
			"Encoded_Application_Version", "Encoded_Application_Url", "Encoded_Library",
			"Encoded_Library/String", "Encoded_Library_CompanyName", "Encoded_Library_Name",
			"Encoded_Library_Version", "Encoded_Library_Date", "Encoded_Library_Settings",
			"Encoded_OperatingSystem", "Language", "Language/String", "Language/String1",
			"Language/String2", "Language/String3", "Language/String4", "Language_More", "ServiceKind",
			"ServiceKind/String", "Disabled", "Disabled/String", "Default", "Default/String", "Forced",
			"Forced/String", "AlternateGroup", "AlternateGroup/String", "Summary", "Encoded_Date",
			"Tagged_Date", "Encryption", "Events_Total", "Events_MinDuration/String",
			"Events_MinDuration/String1", "Events_MinDuration/String2", "Events_MinDuration/String3",
			"Events_MinDuration/String4", "Events_MinDuration/String5", "Events_PopOn", "Events_RollUp",
			"Events_PaintOn", "Lines_Count", "Lines_MaxCountPerEvent", "FirstDisplay_Delay_Frames",
			"FirstDisplay_Type",
		},
	},
	StreamOther: {
		integer: []string{
			"Count", "Status", "StreamCount", "StreamKindID", "StreamKindPos", "StreamOrder",
			"FirstPacketOrder", "FrameRate_Num", "FrameRate_Den", "FrameCount", "Source_FrameCount",
			"Delay_Original", "Video0_Delay", "StreamSize", "StreamSize_Demuxed", "Source_StreamSize",
			"StreamSize_Encoded", "Source_StreamSize_Encoded",
		},
		float: []string{
			"Duration", "Source_Duration", "Source_Duration_FirstFrame", "Source_Duration_LastFrame",
			"BitRate", "BitRate_Minimum", "BitRate_Nominal", "BitRate_Maximum", "BitRate_Encoded",
			"FrameRate", "Delay", "Video_Delay", "TimeStamp_FirstFrame",
		},
		text: []string{
			"StreamKind", "StreamKind/String", "Inform", "ID", "ID/String", "OriginalSourceMedium_ID",
			"OriginalSourceMedium_ID/String", "UniqueID", "UniqueID/String", "MenuID", "MenuID/String",
			"Type", "Format", "Format/String", "Format/Info", "Format/Url", "Format_Commercial",
			"Format_Commercial_IfAny", "Format_Version", "Format_Profile", "Format_Compression",
			"Format_Settings", "Format_AdditionalFeatures", "MuxingMode", "CodecID", "CodecID/String",
			"CodecID/Info", "CodecID/Hint", "CodecID/Url", "CodecID_Description", "Duration/String",
			"Duration/String1", "Duration/String2", "Duration/String3", "Duration/String4",
			"Duration/String5", "Duration_Start", "Duration_End", "Source_Duration/String",
			"Source_Duration/String1", "Source_Duration/String2", "Source_Duration/String3",
			"Source_Duration/String4", "Source_Duration/String5", "Source_Duration_FirstFrame/String",
			"Source_Duration_FirstFrame/String1", "Source_Duration_FirstFrame/String2",
			"Source_Duration_FirstFrame/String3", "Source_Duration_FirstFrame/String4",
			"Source_Duration_FirstFrame/String5", "Source_Duration_LastFrame/String",
			"Source_Duration_LastFrame/String1", "Source_Duration_LastFrame/String2",
			"Source_Duration_LastFrame/String3", "Source_Duration_LastFrame/String4",
			"Source_Duration_LastFrame/String5", "BitRate_Mode", "BitRate_Mode/String", "BitRate/String",
			"BitRate_Minimum/String", "BitRate_Nominal/String", "BitRate_Maximum/String",
			"BitRate_Encoded/String", "FrameRate/String", "Delay/String", "Delay/String1", "Delay/String2",
			"Delay/String3", "Delay/String4", "Delay/String5", "Delay_Settings", "Delay_DropFrame",
			"Delay_Source", "Delay_Source/String", "Delay_Original/String", "Delay_Original/String1",
			"Delay_Original/String2", "Delay_Original/String3", "Delay_Original/String4",
			"Delay_Original/String5", "Delay_Original_Settings", "Delay_Original_DropFrame",
			"Delay_Original_Source", "Video_Delay/String", "Video_Delay/String1", "Video_Delay/String2",
			"Video_Delay/String3", "Video_Delay/String4", "Video_Delay/String5", "Video0_Delay/String",
			"Video0_Delay/String1", "Video0_Delay/String2", "Video0_Delay/String3", "Video0_Delay/String4",
			"Video0_Delay/String5", "TimeStamp_FirstFrame/String", "TimeStamp_FirstFrame/String1",
			"TimeStamp_FirstFrame/String2", "TimeStamp_FirstFrame/String3", "TimeStamp_FirstFrame/String4",
			"TimeStamp_FirstFrame/String5", "TimeCode_FirstFrame", "TimeCode_LastFrame",
			"TimeCode_DropFrame", "TimeCode_Settings", "TimeCode_Stripped", "TimeCode_Stripped/String",
			"TimeCode_Source", "StreamSize/String", "StreamSize/String1", "StreamSize/String2",
			"StreamSize/String3", "StreamSize/String4", "StreamSize/String5", "StreamSize_Proportion",
			"StreamSize_Demuxed/String", "StreamSize_Demuxed/String1", "StreamSize_Demuxed/String2",
			"StreamSize_Demuxed/String3", "StreamSize_Demuxed/String4", "StreamSize_Demuxed/String5",
			"Source_StreamSize/String", "Source_StreamSize/String1", "Source_StreamSize/String2",
			"Source_StreamSize/String3", "Source_StreamSize/String4", "Source_StreamSize/String5",
			"Source_StreamSize_Proportion", "StreamSize_Encoded/String", "StreamSize_Encoded/String1",
			"StreamSize_Encoded/String2", "StreamSize_Encoded/String3", "StreamSize_Encoded/String4",
			"StreamSize_Encoded/String5", "StreamSize_Encoded_Proportion",
			"Source_StreamSize_Encoded/String", "Source_StreamSize_Encoded/String1",
			"Source_StreamSize_Encoded/String2", "Source_StreamSize_Encoded/String3",
			"Source_StreamSize_Encoded/String4", "Source_StreamSize_Encoded/String5",
			"Source_StreamSize_Encoded_Proportion", "Title", "Language", "Language/String",
			"Language/String1", "Language/String2", "Language/String3", "Language/String4", "Language_More",
			"ServiceKind", "ServiceKind/String", "Disabled", "Disabled/String", "Default", "Default/String",
			"Forced", "Forced/String", "AlternateGroup", "AlternateGroup/String",
		},
	},
	StreamImage: {
		integer: []string{
			"Count", "Status", "StreamCount", "StreamKindID", "StreamKindPos", "StreamOrder",
			"FirstPacketOrder", "Width", "Width_Offset", "Width_Original", "Height", "Height_Offset",
			"Height_Original", "Resolution", "BitDepth", "StreamSize", "StreamSize_Demuxed",
		},
		float: []string{
			"PixelAspectRatio", "PixelAspectRatio_Original", "DisplayAspectRatio",
			"DisplayAspectRatio_Original", "Compression_Ratio",
		},
		text: []string{
			"StreamKind", "StreamKind/String", "Inform", "ID", "ID/String", "OriginalSourceMedium_ID",
			"OriginalSourceMedium_ID/String", "UniqueID", "UniqueID/String", "MenuID", "MenuID/String",
			"Title", "Format", "Format/String", "Format/Info", "Format/Url", "Format_Commercial",
			"Format_Commercial_IfAny", "Format_Version", "Format_Profile", "Format_Settings_Endianness",
			"Format_Settings_Packing", "Format_Compression", "Format_Settings", "Format_Settings_Wrapping",
			"Format_AdditionalFeatures", "InternetMediaType", "CodecID", "CodecID/String", "CodecID/Info",
			"CodecID/Hint", "CodecID/Url", "CodecID_Description", "Codec", "Codec/String", "Codec/Family",
			"Codec/Info", "Codec/Url", "Width/String", "Width_Offset/String", "Width_Original/String",
			"Height/String", "Height_Offset/String", "Height_Original/String", "PixelAspectRatio/String",
			"PixelAspectRatio_Original/String", "DisplayAspectRatio/String",
			"DisplayAspectRatio_Original/String", "ColorSpace", "ChromaSubsampling", "Resolution/String",
			"BitDepth/String", "Compression_Mode", "Compression_Mode/String", "StreamSize/String",
			"StreamSize/String1", "StreamSize/String2", "StreamSize/String3", "StreamSize/String4",
			"StreamSize/String5", "StreamSize_Proportion", "StreamSize_Demuxed/String",
			"StreamSize_Demuxed/String1", "StreamSize_Demuxed/String2", "StreamSize_Demuxed/String3",
			"StreamSize_Demuxed/String4", "StreamSize_Demuxed/String5", "Encoded_Library",
			"Encoded_Library/String", "Encoded_Library_Name", "Encoded_Library_Version",
			"Encoded_Library_Date", "Encoded_Library_Settings", "Language", "Language/String",
			"Language/String1", "Language/String2", "Language/String3", "Language/String4", "Language_More",
			"ServiceKind", "ServiceKind/String", "Disabled", "Disabled/String", "Default", "Default/String",
			"Forced", "Forced/String", "AlternateGroup", "AlternateGroup/String", "Summary", "Encoded_Date",
			"Tagged_Date", "Encryption", "colour_description_present", "colour_primaries",
			"transfer_characteristics", "matrix_coefficients", "colour_description_present_Original",
			"colour_primaries_Original", "transfer_characteristics_Original",
			"matrix_coefficients_Original",
		},
	},
	StreamMenu: {
		integer: []string{
			"Count", "Status", "StreamCount", "StreamKindID", "StreamKindPos", "StreamOrder",
			"FirstPacketOrder", "FrameRate_Num", "FrameRate_Den", "FrameCount", "Chapters_Pos_Begin",
			"Chapters_Pos_End",
		},
		float: []string{
			"Duration", "Delay", "FrameRate",
		},
		text: []string{
			"StreamKind", "StreamKind/String", "Inform", "ID", "ID/String", "OriginalSourceMedium_ID",
			"OriginalSourceMedium_ID/String", "UniqueID", "UniqueID/String", "MenuID", "MenuID/String",
			"Format", "Format/String", "Format/Info", "Format/Url", "Format_Commercial",
			"Format_Commercial_IfAny", "Format_Version", "Format_Profile", "Format_Compression",
			"Format_Settings", "Format_AdditionalFeatures", "CodecID", "CodecID/String", "CodecID/Info",
			"CodecID/Hint", "CodecID/Url", "CodecID_Description", "Codec", "Codec/String", "Codec/Info",
			"Codec/Url", "Duration/String", "Duration/String1", "Duration/String2", "Duration/String3",
			"Duration/String4", "Duration/String5", "Duration_Start", "Duration_End", "Delay/String",
			"Delay/String1", "Delay/String2", "Delay/String3", "Delay/String4", "Delay/String5",
			"Delay_Settings", "Delay_DropFrame", "Delay_Source", "FrameRate_Mode", "FrameRate_Mode/String",
			"FrameRate/String", "List_StreamKind", "List_StreamPos", "List", "List/String", "Title",
			"Language", "Language/String", "Language/String1", "Language/String2", "Language/String3",
			"Language/String4", "Language_More", "ServiceKind", "ServiceKind/String", "ServiceName",
			"ServiceChannel", "Service/Url", "ServiceProvider", "ServiceProvider/Url", "ServiceType",
			"NetworkName", "Original/NetworkName", "Countries", "TimeZones", "LawRating",
			"LawRating_Reason", "Disabled", "Disabled/String", "Default", "Default/String", "Forced",
			"Forced/String", "AlternateGroup", "AlternateGroup/String",
		},
	},
}
