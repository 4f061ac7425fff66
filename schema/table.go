package schema

import "github.com/ultimate-research/lvdfile"

// Layout constructors. The table below reads as one line per field.

func i32(name string) Field  { return Field{Name: name, Kind: lvdfile.KindInt32} }
func u8(name string) Field   { return Field{Name: name, Kind: lvdfile.KindUint8} }
func u32(name string) Field  { return Field{Name: name, Kind: lvdfile.KindUint32} }
func u64(name string) Field  { return Field{Name: name, Kind: lvdfile.KindUint64} }
func f32(name string) Field  { return Field{Name: name, Kind: lvdfile.KindFloat32} }
func flag(name string) Field { return Field{Name: name, Kind: lvdfile.KindBool} }
func str(name string) Field  { return Field{Name: name, Kind: lvdfile.KindString} }

func node(name, typ string) Field {
	return Field{Name: name, Kind: lvdfile.KindNode, Type: typ}
}

func list(name, typ string) Field {
	return Field{Name: name, Kind: lvdfile.KindContainer, Elem: lvdfile.KindNode, Type: typ}
}

// registry is the built-in (type, version) → layout table, curated from the
// known LVD format revisions. It is never mutated after initialization.
var registry = map[string]map[uint8]Layout{
	// Basic vector and rectangle records.
	"vector2": {
		1: {f32("x"), f32("y")},
	},
	"vector3": {
		1: {f32("x"), f32("y"), f32("z")},
	},
	"rect": {
		1: {f32("left"), f32("right"), f32("top"), f32("bottom")},
	},

	// Numeric identifier for matching and filtering objects.
	"id": {
		1: {u32("value")},
	},

	// Packed three-letter/four-digit identifier, e.g. "IPP0001".
	"tag": {
		1: {u32("value")},
	},

	// A run of two-dimensional points forming a path shape.
	"path": {
		1: {list("points", "vector2")},
	},

	// Two-dimensional shape. The leading kind discriminator selects point,
	// circle, rect, or path; the four float slots hold the kind's payload
	// with unused slots zero-padded, so every kind occupies the same width.
	// Version 3 is the only revision observed in the wild.
	"shape2": {
		3: {u32("kind"), f32("p1"), f32("p2"), f32("p3"), f32("p4"), node("path", "path")},
	},

	// Three-dimensional shape: box, sphere, capsule, or point, again with a
	// uniform seven-slot payload.
	"shape3": {
		1: {u32("kind"), f32("p1"), f32("p2"), f32("p3"), f32("p4"), f32("p5"), f32("p6"), f32("p7")},
	},

	// Shape collection wrappers.
	"shape_elem2": {
		1: {node("shape", "shape2")},
	},
	"shape_array2": {
		1: {list("shapes", "shape_elem2")},
	},

	// Object metadata.
	"meta_info": {
		1: {u32("editor_version"), u32("format_version"), str("name")},
	},

	// Common data carried by most objects.
	"base": {
		1: {node("meta_info", "meta_info"), str("dynamic_name")},
		2: {
			node("meta_info", "meta_info"), str("dynamic_name"),
			node("dynamic_offset", "vector3"),
		},
		3: {
			node("meta_info", "meta_info"), str("dynamic_name"),
			node("dynamic_offset", "vector3"), flag("is_dynamic"),
			node("instance_id", "id"), node("instance_offset", "vector3"),
		},
		4: {
			node("meta_info", "meta_info"), str("dynamic_name"),
			node("dynamic_offset", "vector3"), flag("is_dynamic"),
			node("instance_id", "id"), node("instance_offset", "vector3"),
			i32("joint_index"), str("joint_name"),
		},
	},

	// Two-dimensional polygonal collision. Version 2 replaces the bare
	// meta_info with the full base record.
	"collision": {
		1: {
			node("meta_info", "meta_info"), u32("flags"),
			list("vertices", "vector2"), list("normals", "vector2"),
			list("cliffs", "collision_cliff"),
		},
		2: {
			node("base", "base"), u32("flags"),
			list("vertices", "vector2"), list("normals", "vector2"),
			list("cliffs", "collision_cliff"),
		},
		3: {
			node("base", "base"), u32("flags"),
			list("vertices", "vector2"), list("normals", "vector2"),
			list("cliffs", "collision_cliff"),
			list("attributes", "collision_attribute"),
		},
		4: {
			node("base", "base"), u32("flags"),
			list("vertices", "vector2"), list("normals", "vector2"),
			list("cliffs", "collision_cliff"),
			list("attributes", "collision_attribute"),
			list("spirits_floors", "collision_spirits_floor"),
		},
	},

	// Grabbable ledge attached to a collision edge.
	"collision_cliff": {
		1: {node("pos", "vector2"), f32("lr")},
		2: {node("base", "base"), node("pos", "vector2"), f32("lr")},
		3: {node("base", "base"), node("pos", "vector2"), f32("lr"), u32("line_index")},
	},

	// Per-edge material preset and attribute bits.
	"collision_attribute": {
		1: {u32("material"), u64("flags")},
	},

	// Hazardous floor entries for spirit battles.
	"collision_spirits_floor": {
		1: {node("base", "base"), u32("line_index"), str("line_group")},
		2: {
			node("base", "base"), u32("line_index"), str("line_group"),
			f32("unk1"), f32("unk2"), f32("unk3"), f32("unk4"), f32("unk5"), f32("unk6"),
		},
	},

	// Two-dimensional point, used for spawn and respawn positions.
	"point": {
		1: {node("meta_info", "meta_info"), node("pos", "vector2")},
		2: {node("base", "base"), node("pos", "vector2")},
	},

	// Rectangular region, used for camera and blast-zone boundaries.
	"region": {
		1: {node("meta_info", "meta_info"), node("rect", "rect")},
		2: {node("base", "base"), node("rect", "rect")},
	},

	"enemy_generator": {
		1: {
			node("base", "base"),
			node("appear_shapes", "shape_array2"),
			node("trigger_shapes", "shape_array2"),
			node("unk1", "shape_array2"),
			node("tag", "tag"),
		},
		2: {
			node("base", "base"),
			node("appear_shapes", "shape_array2"),
			node("trigger_shapes", "shape_array2"),
			node("unk1", "shape_array2"),
			node("tag", "tag"),
			list("appear_tags", "tag"), list("unk2", "tag"),
		},
		3: {
			node("base", "base"),
			node("appear_shapes", "shape_array2"),
			node("trigger_shapes", "shape_array2"),
			node("unk1", "shape_array2"),
			node("tag", "tag"),
			list("appear_tags", "tag"), list("unk2", "tag"),
			list("trigger_tags", "tag"),
		},
	},

	// Smash Run objects.
	"fs_item": {
		1: {node("base", "base"), node("shape", "shape2"), node("tag", "tag")},
	},
	"fs_unknown": {
		1: {node("base", "base"), node("unk1", "rect"), node("unk2", "fs_cam_limit")},
		2: {node("base", "base"), node("unk1", "rect"), node("unk2", "fs_cam_limit"), u32("unk3")},
	},
	"fs_area_cam": {
		1: {node("region", "region"), u32("unk")},
	},
	"fs_area_lock": {
		1: {
			node("base", "base"), node("camera_region", "rect"),
			node("trigger_region", "rect"), u32("unk1"),
		},
		2: {
			node("base", "base"), node("camera_region", "rect"),
			node("trigger_region", "rect"), u32("unk1"), node("unk2", "vector2"),
		},
	},
	"fs_cam_limit": {
		1: {node("base", "base"), node("path", "path")},
	},
	"fs_start_point": {
		1: {node("base", "base"), node("pos", "vector2"), node("id", "id")},
	},

	"damage_shape": {
		1: {node("base", "base"), node("shape", "shape3"), flag("is_damager"), u32("id")},
	},

	"item_popup": {
		1: {node("base", "base"), node("tag", "tag"), node("shapes", "shape_array2")},
	},

	// Versions 2 and 3 do not formally exist.
	"ptrainer_range": {
		1: {
			node("base", "base"), node("range_min", "vector3"),
			node("range_max", "vector3"), list("trainers", "vector3"),
		},
		4: {
			node("base", "base"), node("range_min", "vector3"),
			node("range_max", "vector3"), list("trainers", "vector3"),
			str("parent_model_name"), str("parent_joint_name"),
		},
	},
	"ptrainer_floating_floor": {
		1: {node("base", "base"), node("pos", "vector3")},
	},

	"general_shape2": {
		1: {node("base", "base"), node("tag", "tag"), node("shape", "shape2")},
	},
	"general_shape3": {
		1: {node("base", "base"), node("tag", "tag"), node("shape", "shape3")},
	},

	"area_light": {
		1: {node("base", "base"), node("shape", "shape2")},
		2: {node("base", "base"), node("shape", "shape2"), str("unk1"), str("unk2")},
	},

	"area_hint": {
		1: {
			node("base", "base"), node("shape", "shape3"),
			i32("unk1"), i32("unk2"), i32("unk3"), i32("unk4"),
		},
		2: {
			node("base", "base"), node("shape", "shape3"),
			i32("unk1"), i32("unk2"), i32("unk3"), i32("unk4"), u8("unk5"),
		},
		3: {
			node("base", "base"), node("shape", "shape3"),
			i32("unk1"), i32("unk2"), i32("unk3"), i32("unk4"), u8("unk5"),
			i32("unk6"), i32("unk7"),
		},
	},

	"split_area": {
		1: {node("base", "base"), node("shape", "shape3")},
	},

	// The file envelope. Each version's layout names the top-level sections
	// present in that file format revision, in file order. Sections are
	// stored in full per version because version 12 inserts the ptrainer
	// sections in the middle of the list rather than appending.
	EnvelopeType: envelopeVersions(),
}

// Envelope section fields, named once and composed per version below.
var (
	secCollisions            = list("collisions", "collision")
	secStartPositions        = list("start_positions", "point")
	secRestartPositions      = list("restart_positions", "point")
	secCameraRegions         = list("camera_regions", "region")
	secDeathRegions          = list("death_regions", "region")
	secEnemyGenerators       = list("enemy_generators", "enemy_generator")
	secFsItems               = list("fs_items", "fs_item")
	secFsUnknown             = list("fs_unknown", "fs_unknown")
	secFsAreaCams            = list("fs_area_cams", "fs_area_cam")
	secFsAreaLocks           = list("fs_area_locks", "fs_area_lock")
	secFsCamLimits           = list("fs_cam_limits", "fs_cam_limit")
	secDamageShapes          = list("damage_shapes", "damage_shape")
	secItemPopups            = list("item_popups", "item_popup")
	secPTrainerRanges        = list("ptrainer_ranges", "ptrainer_range")
	secPTrainerFloors        = list("ptrainer_floating_floors", "ptrainer_floating_floor")
	secGeneralShapes2        = list("general_shapes2", "general_shape2")
	secGeneralShapes3        = list("general_shapes3", "general_shape3")
	secAreaLights            = list("area_lights", "area_light")
	secFsStartPoints         = list("fs_start_points", "fs_start_point")
	secAreaHints             = list("area_hints", "area_hint")
	secSplitAreas            = list("split_areas", "split_area")
	secShrinkedCameraRegions = list("shrinked_camera_regions", "region")
	secShrinkedDeathRegions  = list("shrinked_death_regions", "region")
)

func envelopeVersions() map[uint8]Layout {
	return map[uint8]Layout{
		1: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
		},
		2: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems,
		},
		3: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits,
		},
		4: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes,
		},
		5: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
		},
		6: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
			secGeneralShapes2, secGeneralShapes3,
		},
		7: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
			secGeneralShapes2, secGeneralShapes3, secAreaLights,
		},
		8: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
			secGeneralShapes2, secGeneralShapes3, secAreaLights,
			secFsStartPoints,
		},
		9: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
			secGeneralShapes2, secGeneralShapes3, secAreaLights,
			secFsStartPoints, secAreaHints,
		},
		10: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
			secGeneralShapes2, secGeneralShapes3, secAreaLights,
			secFsStartPoints, secAreaHints, secSplitAreas,
		},
		11: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
			secGeneralShapes2, secGeneralShapes3, secAreaLights,
			secFsStartPoints, secAreaHints, secSplitAreas,
			secShrinkedCameraRegions, secShrinkedDeathRegions,
		},
		12: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
			secPTrainerRanges,
			secGeneralShapes2, secGeneralShapes3, secAreaLights,
			secFsStartPoints, secAreaHints, secSplitAreas,
			secShrinkedCameraRegions, secShrinkedDeathRegions,
		},
		13: {
			secCollisions, secStartPositions, secRestartPositions,
			secCameraRegions, secDeathRegions, secEnemyGenerators,
			secFsItems, secFsUnknown, secFsAreaCams, secFsAreaLocks,
			secFsCamLimits, secDamageShapes, secItemPopups,
			secPTrainerRanges, secPTrainerFloors,
			secGeneralShapes2, secGeneralShapes3, secAreaLights,
			secFsStartPoints, secAreaHints, secSplitAreas,
			secShrinkedCameraRegions, secShrinkedDeathRegions,
		},
	}
}
