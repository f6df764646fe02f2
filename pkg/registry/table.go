package registry

import "github.com/cs2kit/cs2/pkg/opcode"

// entry is a table row for an opcode outside of the CC_*/IF_* families.
type entry struct {
	op    opcode.Opcode
	shape Shape
	local Kind
	stack StackEffect
	flow  Flow
}

// widgetOp is a row of the table shared by the CC_* and IF_* families. The
// stack effect is the one of the CC_* form, the IF_* form additionally pops
// the interface component after every other argument.
type widgetOp struct {
	off   opcode.Opcode
	stack StackEffect
}

// kinds parses a compact type list where 'i' is an int and 's' a string.
func kinds(s string) []Kind {
	if s == "" {
		return nil
	}
	ks := make([]Kind, len(s))
	for i := range s {
		switch s[i] {
		case 'i':
			ks[i] = Int
		case 's':
			ks[i] = String
		default:
			panic("bad kind " + s)
		}
	}
	return ks
}

func fx(pops, pushes string) StackEffect {
	return StackEffect{Pops: kinds(pops), Pushes: kinds(pushes)}
}

func rule(r Rule, pops, pushes string) StackEffect {
	return StackEffect{Pops: kinds(pops), Pushes: kinds(pushes), Rule: r}
}

var unknownEffect = StackEffect{Rule: RuleUnknown}

var coreOps = []entry{
	{op: opcode.PUSH_CONSTANT_INT, shape: ShapeInt, stack: fx("", "i")},
	{op: opcode.PUSH_VAR, shape: ShapeInt, stack: fx("", "i")},
	{op: opcode.POP_VAR, shape: ShapeInt, stack: fx("i", "")},
	{op: opcode.PUSH_CONSTANT_STRING, shape: ShapeString, stack: fx("", "s")},
	{op: opcode.BRANCH, shape: ShapeInt, stack: fx("", ""), flow: Branch},
	{op: opcode.BRANCH_NOT, shape: ShapeInt, stack: fx("ii", ""), flow: CondBranch},
	{op: opcode.BRANCH_EQUALS, shape: ShapeInt, stack: fx("ii", ""), flow: CondBranch},
	{op: opcode.BRANCH_LESS_THAN, shape: ShapeInt, stack: fx("ii", ""), flow: CondBranch},
	{op: opcode.BRANCH_GREATER_THAN, shape: ShapeInt, stack: fx("ii", ""), flow: CondBranch},
	{op: opcode.RETURN, shape: ShapeByte, stack: rule(RulePopAll, "", ""), flow: Return},
	{op: opcode.PUSH_VARBIT, shape: ShapeInt, stack: fx("", "i")},
	{op: opcode.POP_VARBIT, shape: ShapeInt, stack: fx("i", "")},
	{op: opcode.BRANCH_LESS_THAN_OR_EQUALS, shape: ShapeInt, stack: fx("ii", ""), flow: CondBranch},
	{op: opcode.BRANCH_GREATER_THAN_OR_EQUALS, shape: ShapeInt, stack: fx("ii", ""), flow: CondBranch},
	{op: opcode.PUSH_INT_LOCAL, shape: ShapeLocal, local: Int, stack: fx("", "i")},
	{op: opcode.POP_INT_LOCAL, shape: ShapeLocal, local: Int, stack: fx("i", "")},
	{op: opcode.PUSH_STRING_LOCAL, shape: ShapeLocal, local: String, stack: fx("", "s")},
	{op: opcode.POP_STRING_LOCAL, shape: ShapeLocal, local: String, stack: fx("s", "")},
	{op: opcode.JOIN_STRING, shape: ShapeInt, stack: rule(RuleOperandCount, "s", "s")},
	{op: opcode.POP_INT_DISCARD, shape: ShapeByte, stack: fx("i", "")},
	{op: opcode.POP_STRING_DISCARD, shape: ShapeByte, stack: fx("s", "")},
	{op: opcode.GOSUB_WITH_PARAMS, shape: ShapeInt, stack: rule(RuleCall, "", ""), flow: Call},
	{op: opcode.OP_42, shape: ShapeInt, stack: fx("", "i")},
	{op: opcode.OP_43, shape: ShapeInt, stack: fx("i", "")},
	// Array operands carry the array id, DEFINE_ARRAY also packs the
	// element type into the low byte.
	{op: opcode.DEFINE_ARRAY, shape: ShapeInt, stack: fx("i", "")},
	{op: opcode.PUSH_ARRAY_INT, shape: ShapeInt, stack: fx("i", "i")},
	{op: opcode.POP_ARRAY_INT, shape: ShapeInt, stack: fx("ii", "")},
	{op: opcode.OP_47, shape: ShapeInt, stack: fx("", "s")},
	{op: opcode.OP_48, shape: ShapeInt, stack: fx("s", "")},
	{op: opcode.SWITCH, shape: ShapeSwitch, stack: fx("i", ""), flow: Switch},

	{op: opcode.CC_CREATE, shape: ShapeByte, stack: fx("iii", "")},
	{op: opcode.CC_DELETE, shape: ShapeByte, stack: fx("", "")},
	{op: opcode.CC_DELETEALL, shape: ShapeByte, stack: fx("i", "")},
	{op: opcode.OP_200, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.OP_201, shape: ShapeByte, stack: fx("i", "i")},

	// Interface-only, there is no CC_* counterpart.
	{op: opcode.OP_2706, shape: ShapeByte, stack: fx("", "i")},

	{op: opcode.ENUM, shape: ShapeByte, stack: rule(RuleEnum, "iiii", "")},

	{op: opcode.ADD, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.SUB, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.MULTIPLY, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.DIV, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.RANDOM, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.RANDOMINC, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.INTERPOLATE, shape: ShapeByte, stack: fx("iiiii", "i")},
	{op: opcode.ADDPERCENT, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.SETBIT, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.CLEARBIT, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.TESTBIT, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.MOD, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.POW, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.INVPOW, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.AND, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.OR, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.SCALE, shape: ShapeByte, stack: fx("iii", "i")},

	{op: opcode.APPEND_NUM, shape: ShapeByte, stack: fx("si", "s")},
	{op: opcode.APPEND, shape: ShapeByte, stack: fx("ss", "s")},
	{op: opcode.APPEND_SIGNUM, shape: ShapeByte, stack: fx("si", "s")},
	{op: opcode.LOWERCASE, shape: ShapeByte, stack: fx("s", "s")},
	{op: opcode.FROMDATE, shape: ShapeByte, stack: fx("i", "s")},
	{op: opcode.TEXT_GENDER, shape: ShapeByte, stack: fx("ss", "s")},
	{op: opcode.TOSTRING, shape: ShapeByte, stack: fx("i", "s")},
	{op: opcode.COMPARE, shape: ShapeByte, stack: fx("ssi", "i")},
	{op: opcode.PARAHEIGHT, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.PARAWIDTH, shape: ShapeByte, stack: fx("ii", "i")},
	{op: opcode.TEXT_SWITCH, shape: ShapeByte, stack: fx("ssi", "s")},
	{op: opcode.ESCAPE, shape: ShapeByte, stack: fx("s", "s")},
	{op: opcode.APPEND_CHAR, shape: ShapeByte, stack: fx("si", "s")},
	{op: opcode.CHAR_ISPRINTABLE, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.CHAR_ISALPHANUMERIC, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.CHAR_ISALPHA, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.CHAR_ISNUMERIC, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.STRING_LENGTH, shape: ShapeByte, stack: fx("s", "i")},
	{op: opcode.SUBSTRING, shape: ShapeByte, stack: fx("sii", "s")},
	{op: opcode.REMOVETAGS, shape: ShapeByte, stack: fx("s", "s")},
	{op: opcode.STRING_INDEXOF_CHAR, shape: ShapeByte, stack: fx("si", "i")},
	{op: opcode.STRING_INDEXOF_STRING, shape: ShapeByte, stack: fx("ss", "i")},

	{op: opcode.OC_NAME, shape: ShapeByte, stack: fx("i", "s")},
	{op: opcode.OC_OP, shape: ShapeByte, stack: fx("ii", "s")},
	{op: opcode.OC_IOP, shape: ShapeByte, stack: fx("ii", "s")},
	{op: opcode.OC_COST, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.OC_STACKABLE, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.OC_CERT, shape: ShapeByte, stack: fx("i", "i")},
	{op: opcode.OC_UNCERT, shape: ShapeByte, stack: fx("i", "i")},
}

// widgetOps is the shared CC_*/IF_* table, offsets are relative to
// opcode.CCBase and opcode.IFBase.
var widgetOps = []widgetOp{
	{0, fx("iiii", "")}, // SETPOSITION
	{1, fx("iiii", "")}, // SETSIZE
	{3, fx("i", "")},    // SETHIDE
	{5, fx("i", "")},
	{6, fx("i", "")},

	{100, fx("ii", "")}, // SETSCROLLPOS
	{101, fx("i", "")},  // SETCOLOUR
	{102, fx("i", "")},  // SETFILL
	{103, fx("i", "")},  // SETTRANS
	{104, fx("i", "")},  // SETLINEWID
	{105, fx("i", "")},  // SETGRAPHIC
	{106, fx("i", "")},  // SET2DANGLE
	{107, fx("i", "")},  // SETTILING
	{108, fx("i", "")},  // SETMODEL
	{109, fx("iiiiii", "")},
	{110, fx("i", "")},   // SETMODELANIM
	{111, fx("i", "")},   // SETMODELORTHOG
	{112, fx("s", "")},   // SETTEXT
	{113, fx("i", "")},   // SETTEXTFONT
	{114, fx("iii", "")}, // SETTEXTALIGN
	{115, fx("i", "")},   // SETTEXTANTIMACRO
	{116, fx("i", "")},   // SETOUTLINE
	{117, fx("i", "")},   // SETGRAPHICSHADOW
	{118, fx("i", "")},   // SETVFLIP
	{119, fx("i", "")},   // SETHFLIP
	{120, fx("ii", "")},  // SETSCROLLSIZE
	{121, fx("", "")},
	{122, fx("i", "")},
	{123, fx("i", "")},
	{124, fx("i", "")},
	{125, fx("i", "")},
	{126, fx("i", "")},
	{127, fx("i", "")},

	{200, fx("ii", "")}, // SETOBJECT
	{201, fx("i", "")},  // SETNPCHEAD
	{202, fx("", "")},   // SETPLAYERHEAD_SELF
	{205, fx("ii", "")}, // SETOBJECT_NONUM
	{212, fx("ii", "")}, // SETOBJECT_ALWAYS_NUM

	{300, fx("is", "")}, // SETOP
	{301, fx("ii", "")}, // SETDRAGGABLE
	{302, fx("i", "")},  // SETDRAGGABLEBEHAVIOR
	{303, fx("i", "")},  // SETDRAGDEADZONE
	{304, fx("i", "")},  // SETDRAGDEADTIME
	{305, fx("s", "")},  // SETOPBASE
	{306, fx("s", "")},  // SETTARGETVERB
	{307, fx("", "")},   // CLEAROPS

	{500, fx("", "i")}, // GETX
	{501, fx("", "i")}, // GETY
	{502, fx("", "i")}, // GETWIDTH
	{503, fx("", "i")}, // GETHEIGHT
	{504, fx("", "i")}, // GETHIDE
	{505, fx("", "i")},

	{600, fx("", "i")}, // GETSCROLLX
	{601, fx("", "i")}, // GETSCROLLY
	{602, fx("", "s")}, // GETTEXT
	{603, fx("", "i")}, // GETSCROLLWIDTH
	{604, fx("", "i")}, // GETSCROLLHEIGHT
	{605, fx("", "i")}, // GETMODELZOOM
	{606, fx("", "i")}, // GETMODELANGLE_X
	{607, fx("", "i")}, // GETMODELANGLE_Z
	{608, fx("", "i")}, // GETMODELANGLE_Y
	{609, fx("", "i")}, // GETTRANS
	{610, fx("", "i")},
	{611, fx("", "i")},
	{612, fx("", "i")},
	{613, fx("", "i")},
	{614, fx("", "i")},

	{700, fx("", "i")}, // GETINVOBJECT
	{701, fx("", "i")}, // GETINVCOUNT
	{702, fx("", "i")}, // GETID

	{800, fx("", "i")},  // GETTARGETMASK
	{801, fx("i", "s")}, // GETOP
	{802, fx("", "s")},  // GETOPBASE

	{927, unknownEffect},
}

// hookOps are the SETON* event handler setters, same offsets in both
// families.
var hookOps = []opcode.Opcode{
	400, 401, 402, 403, 404, 405, 406, 407, 408, 409, 410, 411, 412,
	414, 415, 416, 417, 418, 419,
	420, 421, 422, 423, 424, 425, 426, 427,
}

// placeholderEffects are stack effects observed for unnamed client
// opcodes. Their operands stay unknown.
var placeholderEffects = map[opcode.Opcode]StackEffect{
	opcode.OP_3100: fx("i", ""),
	opcode.OP_3101: fx("ii", ""),
	opcode.OP_3103: fx("", ""),
	opcode.OP_3104: fx("s", ""),
	opcode.OP_3105: fx("s", ""),
	opcode.OP_3106: fx("s", ""),
	opcode.OP_3107: fx("is", ""),
	opcode.OP_3108: fx("iii", ""),
	opcode.OP_3109: fx("ii", ""),
	opcode.OP_3110: fx("i", ""),
	opcode.OP_3111: fx("", "i"),
	opcode.OP_3112: fx("i", ""),
	opcode.OP_3113: fx("si", ""),
	opcode.OP_3115: fx("i", ""),
	opcode.OP_3116: fx("iss", ""),
	opcode.OP_3117: fx("i", ""),
	opcode.OP_3118: fx("i", ""),
	opcode.OP_3119: fx("i", ""),
	opcode.OP_3120: fx("i", ""),
	opcode.OP_3121: fx("i", ""),
	opcode.OP_3122: fx("i", ""),
	opcode.OP_3123: fx("i", ""),
	opcode.OP_3124: fx("", ""),
	opcode.OP_3125: fx("i", ""),
	opcode.OP_3126: fx("i", ""),
	opcode.OP_3127: fx("i", ""),
	opcode.OP_3128: fx("", "i"),
	opcode.OP_3129: fx("ii", ""),
	opcode.OP_3130: fx("ii", ""),
	opcode.OP_3131: fx("i", ""),
	opcode.OP_3132: fx("", "ii"),
	opcode.OP_3133: fx("i", ""),
	opcode.OP_3134: fx("", ""),
	opcode.OP_3135: fx("ii", ""),
	opcode.OP_3136: fx("i", ""),
	opcode.OP_3137: fx("", "i"),
	opcode.OP_3138: fx("i", ""),
	opcode.OP_3139: fx("", "i"),
	opcode.OP_3200: fx("iii", ""),
	opcode.OP_3201: fx("i", ""),
	opcode.OP_3202: fx("ii", ""),
	opcode.OP_3300: fx("", "i"),
	opcode.OP_3301: fx("ii", "i"),
	opcode.OP_3302: fx("ii", "i"),
	opcode.OP_3303: fx("ii", "i"),
	opcode.OP_3304: fx("i", "i"),
	opcode.OP_3305: fx("i", "i"),
	opcode.OP_3306: fx("i", "i"),
	opcode.OP_3307: fx("i", "i"),
	opcode.OP_3308: fx("", "i"),
	opcode.OP_3309: fx("i", "i"),
	opcode.OP_3310: fx("i", "i"),
	opcode.OP_3311: fx("i", "i"),
	opcode.OP_3312: fx("", "i"),
	opcode.OP_3313: fx("ii", "i"),
	opcode.OP_3314: fx("ii", "i"),
	opcode.OP_3315: fx("ii", "i"),
	opcode.OP_3316: fx("", "i"),
	opcode.OP_3317: fx("", "i"),
	opcode.OP_3318: fx("", "i"),
	opcode.OP_3321: fx("", "i"),
	opcode.OP_3322: fx("", "i"),
	opcode.OP_3323: fx("", "i"),
	opcode.OP_3324: fx("", "i"),
	opcode.OP_3325: fx("iiii", "i"),
	opcode.OP_3400: fx("ii", "s"),
	opcode.OP_3411: fx("i", "i"),
	opcode.OP_3600: fx("", "i"),
	opcode.OP_3601: fx("i", "ss"),
	opcode.OP_3602: fx("i", "i"),
	opcode.OP_3603: fx("i", "i"),
	opcode.OP_3604: fx("s", "i"),
	opcode.OP_3605: fx("s", ""),
	opcode.OP_3606: fx("s", ""),
	opcode.OP_3607: fx("s", ""),
	opcode.OP_3608: fx("s", ""),
	opcode.OP_3609: fx("s", "i"),
	opcode.OP_3611: fx("", "s"),
	opcode.OP_3612: fx("", "i"),
	opcode.OP_3614: fx("i", "s"),
	opcode.OP_3615: fx("i", "i"),
	opcode.OP_3616: fx("", "i"),
	opcode.OP_3617: fx("s", ""),
	opcode.OP_3618: fx("", "i"),
	opcode.OP_3619: fx("s", ""),
	opcode.OP_3620: fx("", ""),
	opcode.OP_3621: fx("", "i"),
	opcode.OP_3622: fx("i", "ss"),
	opcode.OP_3623: fx("s", "i"),
	opcode.OP_3624: fx("i", "i"),
	opcode.OP_3625: fx("", "s"),
	opcode.OP_3626: fx("i", "i"),
	opcode.OP_3627: fx("i", "i"),
	opcode.OP_3628: fx("", ""),
	opcode.OP_3629: fx("i", ""),
	opcode.OP_3630: fx("i", ""),
	opcode.OP_3631: fx("i", ""),
	opcode.OP_3632: fx("i", ""),
	opcode.OP_3633: fx("i", ""),
	opcode.OP_3634: fx("i", ""),
	opcode.OP_3635: fx("i", ""),
	opcode.OP_3636: fx("i", ""),
	opcode.OP_3637: fx("i", ""),
	opcode.OP_3638: fx("i", ""),
	opcode.OP_3639: fx("", ""),
	opcode.OP_3640: fx("", ""),
	opcode.OP_3641: fx("i", ""),
	opcode.OP_3642: fx("i", ""),
	opcode.OP_3643: fx("", ""),
	opcode.OP_3644: fx("", ""),
	opcode.OP_3645: fx("i", ""),
	opcode.OP_3646: fx("i", ""),
	opcode.OP_3647: fx("i", ""),
	opcode.OP_3648: fx("i", ""),
	opcode.OP_3649: fx("i", ""),
	opcode.OP_3650: fx("i", ""),
	opcode.OP_3651: fx("i", ""),
	opcode.OP_3652: fx("i", ""),
	opcode.OP_3653: fx("i", ""),
	opcode.OP_3654: fx("i", ""),
	opcode.OP_3655: fx("", ""),
	opcode.OP_3656: fx("i", ""),
	opcode.OP_3657: fx("i", ""),
	opcode.OP_4207: fx("i", "i"),
	opcode.OP_5000: fx("", "i"),
	opcode.OP_5003: fx("ii", "iiisss"),
	opcode.OP_5004: fx("i", "iiisss"),
	opcode.OP_5005: fx("", "i"),
	opcode.OP_5015: fx("", "s"),
	opcode.OP_5016: fx("", "i"),
	opcode.OP_5017: fx("i", "i"),
	opcode.OP_5019: fx("i", "i"),
	opcode.OP_5022: fx("", "s"),
	opcode.OP_5306: fx("", "i"),
	opcode.OP_5307: fx("i", ""),
	opcode.OP_5308: fx("", "i"),
	opcode.OP_5309: fx("i", ""),
	opcode.OP_6518: fx("", "i"),
}
