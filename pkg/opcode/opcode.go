package opcode

import (
	"fmt"
	"sort"
)

//go:generate stringer -type=Opcode

// Opcode represents a single CS2 operation code. Codes are stored as
// unsigned 16-bit values in the instruction stream, the type is signed to
// hold the switch case combinators.
type Opcode int32

// Viable list of known operation codes. Names starting with OP_ are
// placeholders for operations whose purpose is unknown.
const (
	// Switch case combinators, only found inside switch tables.
	SS_AND Opcode = -2
	SS_OR  Opcode = -1

	// Constants, variables and flow control
	PUSH_CONSTANT_INT             Opcode = 0
	PUSH_VAR                      Opcode = 1
	POP_VAR                       Opcode = 2
	PUSH_CONSTANT_STRING          Opcode = 3
	BRANCH                        Opcode = 6
	BRANCH_NOT                    Opcode = 7
	BRANCH_EQUALS                 Opcode = 8
	BRANCH_LESS_THAN              Opcode = 9
	BRANCH_GREATER_THAN           Opcode = 10
	RETURN                        Opcode = 21
	PUSH_VARBIT                   Opcode = 25
	POP_VARBIT                    Opcode = 27
	BRANCH_LESS_THAN_OR_EQUALS    Opcode = 31
	BRANCH_GREATER_THAN_OR_EQUALS Opcode = 32
	PUSH_INT_LOCAL                Opcode = 33
	POP_INT_LOCAL                 Opcode = 34
	PUSH_STRING_LOCAL             Opcode = 35
	POP_STRING_LOCAL              Opcode = 36
	JOIN_STRING                   Opcode = 37
	POP_INT_DISCARD               Opcode = 38
	POP_STRING_DISCARD            Opcode = 39
	GOSUB_WITH_PARAMS             Opcode = 40
	OP_42                         Opcode = 42
	OP_43                         Opcode = 43
	DEFINE_ARRAY                  Opcode = 44
	PUSH_ARRAY_INT                Opcode = 45
	POP_ARRAY_INT                 Opcode = 46
	OP_47                         Opcode = 47
	OP_48                         Opcode = 48
	SWITCH                        Opcode = 60

	// Component creation
	CC_CREATE    Opcode = 100
	CC_DELETE    Opcode = 101
	CC_DELETEALL Opcode = 102
	OP_200       Opcode = 200
	OP_201       Opcode = 201

	// Component (CC_*) operations
	CC_SETPOSITION          Opcode = 1000
	CC_SETSIZE              Opcode = 1001
	CC_SETHIDE              Opcode = 1003
	OP_1005                 Opcode = 1005
	OP_1006                 Opcode = 1006
	CC_SETSCROLLPOS         Opcode = 1100
	CC_SETCOLOUR            Opcode = 1101
	CC_SETFILL              Opcode = 1102
	CC_SETTRANS             Opcode = 1103
	CC_SETLINEWID           Opcode = 1104
	CC_SETGRAPHIC           Opcode = 1105
	CC_SET2DANGLE           Opcode = 1106
	CC_SETTILING            Opcode = 1107
	CC_SETMODEL             Opcode = 1108
	CC_SETMODELANGLE        Opcode = 1109
	CC_SETMODELANIM         Opcode = 1110
	CC_SETMODELORTHOG       Opcode = 1111
	CC_SETTEXT              Opcode = 1112
	CC_SETTEXTFONT          Opcode = 1113
	CC_SETTEXTALIGN         Opcode = 1114
	CC_SETTEXTANTIMACRO     Opcode = 1115
	CC_SETOUTLINE           Opcode = 1116
	CC_SETGRAPHICSHADOW     Opcode = 1117
	CC_SETVFLIP             Opcode = 1118
	CC_SETHFLIP             Opcode = 1119
	CC_SETSCROLLSIZE        Opcode = 1120
	OP_1121                 Opcode = 1121
	OP_1122                 Opcode = 1122
	OP_1123                 Opcode = 1123
	OP_1124                 Opcode = 1124
	OP_1125                 Opcode = 1125
	OP_1126                 Opcode = 1126
	OP_1127                 Opcode = 1127
	CC_SETOBJECT            Opcode = 1200
	CC_SETNPCHEAD           Opcode = 1201
	CC_SETPLAYERHEAD_SELF   Opcode = 1202
	CC_SETOBJECT_NONUM      Opcode = 1205
	CC_SETOBJECT_ALWAYS_NUM Opcode = 1212
	CC_SETOP                Opcode = 1300
	CC_SETDRAGGABLE         Opcode = 1301
	CC_SETDRAGGABLEBEHAVIOR Opcode = 1302
	CC_SETDRAGDEADZONE      Opcode = 1303
	CC_SETDRAGDEADTIME      Opcode = 1304
	CC_SETOPBASE            Opcode = 1305
	CC_SETTARGETVERB        Opcode = 1306
	CC_CLEAROPS             Opcode = 1307
	CC_SETONCLICK           Opcode = 1400
	CC_SETONHOLD            Opcode = 1401
	CC_SETONRELEASE         Opcode = 1402
	CC_SETONMOUSEOVER       Opcode = 1403
	CC_SETONMOUSELEAVE      Opcode = 1404
	CC_SETONDRAG            Opcode = 1405
	CC_SETONTARGETLEAVE     Opcode = 1406
	CC_SETONVARTRANSMIT     Opcode = 1407
	CC_SETONTIME            Opcode = 1408
	CC_SETONTOP             Opcode = 1409
	CC_SETONDRAGCOMPLETE    Opcode = 1410
	CC_SETONCLICKREPEAT     Opcode = 1411
	CC_SETONMOUSEREPEAT     Opcode = 1412
	CC_SETONINVTRANSMIT     Opcode = 1414
	CC_SETONSTATTRANSMIT    Opcode = 1415
	CC_SETONTARGETENTER     Opcode = 1416
	CC_SETONSCROLLWHEEL     Opcode = 1417
	CC_SETONCHATTRANSMIT    Opcode = 1418
	CC_SETONKEY             Opcode = 1419
	OP_1420                 Opcode = 1420
	OP_1421                 Opcode = 1421
	OP_1422                 Opcode = 1422
	OP_1423                 Opcode = 1423
	OP_1424                 Opcode = 1424
	OP_1425                 Opcode = 1425
	OP_1426                 Opcode = 1426
	OP_1427                 Opcode = 1427
	CC_GETX                 Opcode = 1500
	CC_GETY                 Opcode = 1501
	CC_GETWIDTH             Opcode = 1502
	CC_GETHEIGHT            Opcode = 1503
	CC_GETHIDE              Opcode = 1504
	OP_1505                 Opcode = 1505
	CC_GETSCROLLX           Opcode = 1600
	CC_GETSCROLLY           Opcode = 1601
	CC_GETTEXT              Opcode = 1602
	CC_GETSCROLLWIDTH       Opcode = 1603
	CC_GETSCROLLHEIGHT      Opcode = 1604
	CC_GETMODELZOOM         Opcode = 1605
	CC_GETMODELANGLE_X      Opcode = 1606
	CC_GETMODELANGLE_Z      Opcode = 1607
	CC_GETMODELANGLE_Y      Opcode = 1608
	CC_GETTRANS             Opcode = 1609
	OP_1610                 Opcode = 1610
	OP_1611                 Opcode = 1611
	OP_1612                 Opcode = 1612
	OP_1613                 Opcode = 1613
	OP_1614                 Opcode = 1614
	CC_GETINVOBJECT         Opcode = 1700
	CC_GETINVCOUNT          Opcode = 1701
	CC_GETID                Opcode = 1702
	CC_GETTARGETMASK        Opcode = 1800
	CC_GETOP                Opcode = 1801
	CC_GETOPBASE            Opcode = 1802
	OP_1927                 Opcode = 1927

	// Interface (IF_*) operations, CC_* + 1000
	IF_SETPOSITION          Opcode = 2000
	IF_SETSIZE              Opcode = 2001
	IF_SETHIDE              Opcode = 2003
	OP_2005                 Opcode = 2005
	OP_2006                 Opcode = 2006
	IF_SETSCROLLPOS         Opcode = 2100
	IF_SETCOLOUR            Opcode = 2101
	IF_SETFILL              Opcode = 2102
	IF_SETTRANS             Opcode = 2103
	IF_SETLINEWID           Opcode = 2104
	IF_SETGRAPHIC           Opcode = 2105
	IF_SET2DANGLE           Opcode = 2106
	IF_SETTILING            Opcode = 2107
	IF_SETMODEL             Opcode = 2108
	IF_SETMODELANGLE        Opcode = 2109
	IF_SETMODELANIM         Opcode = 2110
	IF_SETMODELORTHOG       Opcode = 2111
	IF_SETTEXT              Opcode = 2112
	IF_SETTEXTFONT          Opcode = 2113
	IF_SETTEXTALIGN         Opcode = 2114
	IF_SETTEXTANTIMACRO     Opcode = 2115
	IF_SETOUTLINE           Opcode = 2116
	IF_SETGRAPHICSHADOW     Opcode = 2117
	IF_SETVFLIP             Opcode = 2118
	IF_SETHFLIP             Opcode = 2119
	IF_SETSCROLLSIZE        Opcode = 2120
	OP_2121                 Opcode = 2121
	OP_2122                 Opcode = 2122
	OP_2123                 Opcode = 2123
	OP_2124                 Opcode = 2124
	OP_2125                 Opcode = 2125
	OP_2126                 Opcode = 2126
	OP_2127                 Opcode = 2127
	IF_SETOBJECT            Opcode = 2200
	IF_SETNPCHEAD           Opcode = 2201
	IF_SETPLAYERHEAD_SELF   Opcode = 2202
	IF_SETOBJECT_NONUM      Opcode = 2205
	IF_SETOBJECT_ALWAYS_NUM Opcode = 2212
	IF_SETOP                Opcode = 2300
	IF_SETDRAGGABLE         Opcode = 2301
	IF_SETDRAGGABLEBEHAVIOR Opcode = 2302
	IF_SETDRAGDEADZONE      Opcode = 2303
	IF_SETDRAGDEADTIME      Opcode = 2304
	IF_SETOPBASE            Opcode = 2305
	IF_SETTARGETVERB        Opcode = 2306
	IF_CLEAROPS             Opcode = 2307
	IF_SETONCLICK           Opcode = 2400
	IF_SETONHOLD            Opcode = 2401
	IF_SETONRELEASE         Opcode = 2402
	IF_SETONMOUSEOVER       Opcode = 2403
	IF_SETONMOUSELEAVE      Opcode = 2404
	IF_SETONDRAG            Opcode = 2405
	IF_SETONTARGETLEAVE     Opcode = 2406
	IF_SETONVARTRANSMIT     Opcode = 2407
	IF_SETONTIME            Opcode = 2408
	IF_SETONTOP             Opcode = 2409
	IF_SETONDRAGCOMPLETE    Opcode = 2410
	IF_SETONCLICKREPEAT     Opcode = 2411
	IF_SETONMOUSEREPEAT     Opcode = 2412
	IF_SETONINVTRANSMIT     Opcode = 2414
	IF_SETONSTATTRANSMIT    Opcode = 2415
	IF_SETONTARGETENTER     Opcode = 2416
	IF_SETONSCROLLWHEEL     Opcode = 2417
	IF_SETONCHATTRANSMIT    Opcode = 2418
	IF_SETONKEY             Opcode = 2419
	OP_2420                 Opcode = 2420
	OP_2421                 Opcode = 2421
	OP_2422                 Opcode = 2422
	OP_2423                 Opcode = 2423
	OP_2424                 Opcode = 2424
	OP_2425                 Opcode = 2425
	OP_2426                 Opcode = 2426
	OP_2427                 Opcode = 2427
	IF_GETX                 Opcode = 2500
	IF_GETY                 Opcode = 2501
	IF_GETWIDTH             Opcode = 2502
	IF_GETHEIGHT            Opcode = 2503
	IF_GETHIDE              Opcode = 2504
	OP_2505                 Opcode = 2505
	IF_GETSCROLLX           Opcode = 2600
	IF_GETSCROLLY           Opcode = 2601
	IF_GETTEXT              Opcode = 2602
	IF_GETSCROLLWIDTH       Opcode = 2603
	IF_GETSCROLLHEIGHT      Opcode = 2604
	IF_GETMODELZOOM         Opcode = 2605
	IF_GETMODELANGLE_X      Opcode = 2606
	IF_GETMODELANGLE_Z      Opcode = 2607
	IF_GETMODELANGLE_Y      Opcode = 2608
	IF_GETTRANS             Opcode = 2609
	OP_2610                 Opcode = 2610
	OP_2611                 Opcode = 2611
	OP_2612                 Opcode = 2612
	OP_2613                 Opcode = 2613
	OP_2614                 Opcode = 2614
	IF_GETINVOBJECT         Opcode = 2700
	IF_GETINVCOUNT          Opcode = 2701
	IF_GETID                Opcode = 2702
	OP_2706                 Opcode = 2706
	IF_GETTARGETMASK        Opcode = 2800
	IF_GETOP                Opcode = 2801
	IF_GETOPBASE            Opcode = 2802
	OP_2927                 Opcode = 2927

	// Client state
	OP_3100 Opcode = 3100
	OP_3101 Opcode = 3101
	OP_3103 Opcode = 3103
	OP_3104 Opcode = 3104
	OP_3105 Opcode = 3105
	OP_3106 Opcode = 3106
	OP_3107 Opcode = 3107
	OP_3108 Opcode = 3108
	OP_3109 Opcode = 3109
	OP_3110 Opcode = 3110
	OP_3111 Opcode = 3111
	OP_3112 Opcode = 3112
	OP_3113 Opcode = 3113
	OP_3115 Opcode = 3115
	OP_3116 Opcode = 3116
	OP_3117 Opcode = 3117
	OP_3118 Opcode = 3118
	OP_3119 Opcode = 3119
	OP_3120 Opcode = 3120
	OP_3121 Opcode = 3121
	OP_3122 Opcode = 3122
	OP_3123 Opcode = 3123
	OP_3124 Opcode = 3124
	OP_3125 Opcode = 3125
	OP_3126 Opcode = 3126
	OP_3127 Opcode = 3127
	OP_3128 Opcode = 3128
	OP_3129 Opcode = 3129
	OP_3130 Opcode = 3130
	OP_3131 Opcode = 3131
	OP_3132 Opcode = 3132
	OP_3133 Opcode = 3133
	OP_3134 Opcode = 3134
	OP_3135 Opcode = 3135
	OP_3136 Opcode = 3136
	OP_3137 Opcode = 3137
	OP_3138 Opcode = 3138
	OP_3139 Opcode = 3139
	OP_3200 Opcode = 3200
	OP_3201 Opcode = 3201
	OP_3202 Opcode = 3202
	OP_3300 Opcode = 3300
	OP_3301 Opcode = 3301
	OP_3302 Opcode = 3302
	OP_3303 Opcode = 3303
	OP_3304 Opcode = 3304
	OP_3305 Opcode = 3305
	OP_3306 Opcode = 3306
	OP_3307 Opcode = 3307
	OP_3308 Opcode = 3308
	OP_3309 Opcode = 3309
	OP_3310 Opcode = 3310
	OP_3311 Opcode = 3311
	OP_3312 Opcode = 3312
	OP_3313 Opcode = 3313
	OP_3314 Opcode = 3314
	OP_3315 Opcode = 3315
	OP_3316 Opcode = 3316
	OP_3317 Opcode = 3317
	OP_3318 Opcode = 3318
	OP_3321 Opcode = 3321
	OP_3322 Opcode = 3322
	OP_3323 Opcode = 3323
	OP_3324 Opcode = 3324
	OP_3325 Opcode = 3325
	OP_3400 Opcode = 3400
	ENUM    Opcode = 3408
	OP_3411 Opcode = 3411
	OP_3600 Opcode = 3600
	OP_3601 Opcode = 3601
	OP_3602 Opcode = 3602
	OP_3603 Opcode = 3603
	OP_3604 Opcode = 3604
	OP_3605 Opcode = 3605
	OP_3606 Opcode = 3606
	OP_3607 Opcode = 3607
	OP_3608 Opcode = 3608
	OP_3609 Opcode = 3609
	OP_3611 Opcode = 3611
	OP_3612 Opcode = 3612
	OP_3613 Opcode = 3613
	OP_3614 Opcode = 3614
	OP_3615 Opcode = 3615
	OP_3616 Opcode = 3616
	OP_3617 Opcode = 3617
	OP_3618 Opcode = 3618
	OP_3619 Opcode = 3619
	OP_3620 Opcode = 3620
	OP_3621 Opcode = 3621
	OP_3622 Opcode = 3622
	OP_3623 Opcode = 3623
	OP_3624 Opcode = 3624
	OP_3625 Opcode = 3625
	OP_3626 Opcode = 3626
	OP_3627 Opcode = 3627
	OP_3628 Opcode = 3628
	OP_3629 Opcode = 3629
	OP_3630 Opcode = 3630
	OP_3631 Opcode = 3631
	OP_3632 Opcode = 3632
	OP_3633 Opcode = 3633
	OP_3634 Opcode = 3634
	OP_3635 Opcode = 3635
	OP_3636 Opcode = 3636
	OP_3637 Opcode = 3637
	OP_3638 Opcode = 3638
	OP_3639 Opcode = 3639
	OP_3640 Opcode = 3640
	OP_3641 Opcode = 3641
	OP_3642 Opcode = 3642
	OP_3643 Opcode = 3643
	OP_3644 Opcode = 3644
	OP_3645 Opcode = 3645
	OP_3646 Opcode = 3646
	OP_3647 Opcode = 3647
	OP_3648 Opcode = 3648
	OP_3649 Opcode = 3649
	OP_3650 Opcode = 3650
	OP_3651 Opcode = 3651
	OP_3652 Opcode = 3652
	OP_3653 Opcode = 3653
	OP_3654 Opcode = 3654
	OP_3655 Opcode = 3655
	OP_3656 Opcode = 3656
	OP_3657 Opcode = 3657

	// Arithmetic
	ADD         Opcode = 4000
	SUB         Opcode = 4001
	MULTIPLY    Opcode = 4002
	DIV         Opcode = 4003
	RANDOM      Opcode = 4004
	RANDOMINC   Opcode = 4005
	INTERPOLATE Opcode = 4006
	ADDPERCENT  Opcode = 4007
	SETBIT      Opcode = 4008
	CLEARBIT    Opcode = 4009
	TESTBIT     Opcode = 4010
	MOD         Opcode = 4011
	POW         Opcode = 4012
	INVPOW      Opcode = 4013
	AND         Opcode = 4014
	OR          Opcode = 4015
	SCALE       Opcode = 4018

	// Strings
	APPEND_NUM            Opcode = 4100
	APPEND                Opcode = 4101
	APPEND_SIGNUM         Opcode = 4102
	LOWERCASE             Opcode = 4103
	FROMDATE              Opcode = 4104
	TEXT_GENDER           Opcode = 4105
	TOSTRING              Opcode = 4106
	COMPARE               Opcode = 4107
	PARAHEIGHT            Opcode = 4108
	PARAWIDTH             Opcode = 4109
	TEXT_SWITCH           Opcode = 4110
	ESCAPE                Opcode = 4111
	APPEND_CHAR           Opcode = 4112
	CHAR_ISPRINTABLE      Opcode = 4113
	CHAR_ISALPHANUMERIC   Opcode = 4114
	CHAR_ISALPHA          Opcode = 4115
	CHAR_ISNUMERIC        Opcode = 4116
	STRING_LENGTH         Opcode = 4117
	SUBSTRING             Opcode = 4118
	REMOVETAGS            Opcode = 4119
	STRING_INDEXOF_CHAR   Opcode = 4120
	STRING_INDEXOF_STRING Opcode = 4121

	// Object config
	OC_NAME      Opcode = 4200
	OC_OP        Opcode = 4201
	OC_IOP       Opcode = 4202
	OC_COST      Opcode = 4203
	OC_STACKABLE Opcode = 4204
	OC_CERT      Opcode = 4205
	OC_UNCERT    Opcode = 4206
	OP_4207      Opcode = 4207
	OP_4208      Opcode = 4208
	OP_4209      Opcode = 4209
	OP_4210      Opcode = 4210
	OP_4211      Opcode = 4211
	OP_4212      Opcode = 4212

	// Unresolved
	OP_5000 Opcode = 5000
	OP_5001 Opcode = 5001
	OP_5002 Opcode = 5002
	OP_5003 Opcode = 5003
	OP_5004 Opcode = 5004
	OP_5005 Opcode = 5005
	OP_5008 Opcode = 5008
	OP_5009 Opcode = 5009
	OP_5015 Opcode = 5015
	OP_5016 Opcode = 5016
	OP_5017 Opcode = 5017
	OP_5018 Opcode = 5018
	OP_5019 Opcode = 5019
	OP_5020 Opcode = 5020
	OP_5021 Opcode = 5021
	OP_5022 Opcode = 5022
	OP_5306 Opcode = 5306
	OP_5307 Opcode = 5307
	OP_5308 Opcode = 5308
	OP_5309 Opcode = 5309
	OP_5504 Opcode = 5504
	OP_5505 Opcode = 5505
	OP_5506 Opcode = 5506
	OP_5530 Opcode = 5530
	OP_5531 Opcode = 5531
	OP_5630 Opcode = 5630
	OP_6200 Opcode = 6200
	OP_6201 Opcode = 6201
	OP_6202 Opcode = 6202
	OP_6203 Opcode = 6203
	OP_6204 Opcode = 6204
	OP_6205 Opcode = 6205
	OP_6500 Opcode = 6500
	OP_6501 Opcode = 6501
	OP_6502 Opcode = 6502
	OP_6506 Opcode = 6506
	OP_6507 Opcode = 6507
	OP_6511 Opcode = 6511
	OP_6512 Opcode = 6512
	OP_6513 Opcode = 6513
	OP_6514 Opcode = 6514
	OP_6515 Opcode = 6515
	OP_6516 Opcode = 6516
	OP_6518 Opcode = 6518
	OP_6519 Opcode = 6519
	OP_6520 Opcode = 6520
	OP_6521 Opcode = 6521
	OP_6522 Opcode = 6522
	OP_6523 Opcode = 6523
	OP_6524 Opcode = 6524
	OP_6525 Opcode = 6525
	OP_6526 Opcode = 6526
	OP_6600 Opcode = 6600
	OP_6601 Opcode = 6601
	OP_6602 Opcode = 6602
	OP_6603 Opcode = 6603
	OP_6604 Opcode = 6604
	OP_6605 Opcode = 6605
	OP_6606 Opcode = 6606
	OP_6607 Opcode = 6607
	OP_6608 Opcode = 6608
	OP_6609 Opcode = 6609
	OP_6610 Opcode = 6610
	OP_6611 Opcode = 6611
	OP_6612 Opcode = 6612
	OP_6613 Opcode = 6613
	OP_6614 Opcode = 6614
	OP_6615 Opcode = 6615
	OP_6616 Opcode = 6616
	OP_6617 Opcode = 6617
	OP_6618 Opcode = 6618
	OP_6619 Opcode = 6619
	OP_6620 Opcode = 6620
	OP_6621 Opcode = 6621
	OP_6622 Opcode = 6622
	OP_6623 Opcode = 6623
	OP_6624 Opcode = 6624
	OP_6625 Opcode = 6625
	OP_6626 Opcode = 6626
	OP_6627 Opcode = 6627
	OP_6628 Opcode = 6628
	OP_6629 Opcode = 6629
	OP_6630 Opcode = 6630
	OP_6631 Opcode = 6631
	OP_6632 Opcode = 6632
	OP_6633 Opcode = 6633
	OP_6634 Opcode = 6634
	OP_6635 Opcode = 6635
	OP_6636 Opcode = 6636
	OP_6637 Opcode = 6637
	OP_6638 Opcode = 6638
	OP_6639 Opcode = 6639
	OP_6640 Opcode = 6640
	OP_6693 Opcode = 6693
	OP_6694 Opcode = 6694
	OP_6695 Opcode = 6695
	OP_6696 Opcode = 6696
	OP_6697 Opcode = 6697
	OP_6698 Opcode = 6698
	OP_6699 Opcode = 6699
)

const (
	// CCBase is the first code of the CC_* family.
	CCBase Opcode = CC_SETPOSITION
	// IFBase is the first code of the IF_* family, every IF_* opcode is
	// the CC_* one shifted by IFBase-CCBase.
	IFBase Opcode = IF_SETPOSITION
	// FamilySize bounds both CC_* and IF_* families.
	FamilySize = 1000
)

var (
	stringToOpcode = make(map[string]Opcode, len(_Opcode_map))
	allOpcodes     = make([]Opcode, 0, len(_Opcode_map))
)

func init() {
	for op, s := range _Opcode_map {
		stringToOpcode[s] = op
		allOpcodes = append(allOpcodes, op)
	}
	sort.Slice(allOpcodes, func(i, j int) bool { return allOpcodes[i] < allOpcodes[j] })
}

// All returns every known opcode (combinators included) in ascending order.
// The slice is shared and must not be modified.
func All() []Opcode {
	return allOpcodes
}

// FromString converts string representation to an opcode itself.
func FromString(s string) (Opcode, error) {
	if op, ok := stringToOpcode[s]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%s not found", s)
}

// IsValid returns true if the opcode passed is known and can appear in the
// instruction stream. Switch combinators are not valid instructions.
func IsValid(op Opcode) bool {
	if op < 0 {
		return false
	}
	_, ok := _Opcode_map[op]
	return ok
}

// IsPseudo returns true for switch case combinators.
func IsPseudo(op Opcode) bool {
	return op == SS_OR || op == SS_AND
}

// IsPlaceholder returns true for known opcodes without a resolved name.
func IsPlaceholder(op Opcode) bool {
	s, ok := _Opcode_map[op]
	return ok && len(s) > 3 && s[:3] == "OP_"
}
